package usecase

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/infrastructure/genai"
	"skillio/internal/infrastructure/ratelimit"
	"skillio/pkg/errors"
)

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func TestAssistant_SupportChat(t *testing.T) {
	gen := &stubGenerator{text: "You can book from the service page!"}
	uc := NewAssistantUseCase(gen, nil)

	reply, err := uc.SupportChat(context.Background(), "u1", "Wanjiru", "How do I book?")
	require.NoError(t, err)
	assert.Equal(t, "You can book from the service page!", reply.Text)
	assert.False(t, reply.Fallback)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "You are Rumi")
	assert.Contains(t, gen.prompts[0], "Current user's name is Wanjiru.")
	assert.Contains(t, gen.prompts[0], "User question: How do I book?")
}

func TestAssistant_Fallbacks(t *testing.T) {
	ctx := context.Background()

	empty := NewAssistantUseCase(&stubGenerator{text: "  "}, nil)
	reply, err := empty.SupportChat(ctx, "u1", "", "hi")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	assert.Equal(t, "I'm sorry, I'm having a little trouble thinking. Can you try again?", reply.Text)

	failing := NewAssistantUseCase(&stubGenerator{err: stderrors.New("quota exceeded")}, nil)
	reply, err = failing.SupportChat(ctx, "u1", "", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Oops! My brain hit a little snag. Try asking me something else!", reply.Text)

	reply, err = failing.ServiceDescription(ctx, "u1", "Dog walking", "Community & Errands")
	require.NoError(t, err)
	assert.Equal(t, "Friendly and reliable service for the neighborhood!", reply.Text)

	reply, err = failing.BusinessAdvice(ctx, "u1", "How do I price?")
	require.NoError(t, err)
	assert.Equal(t, "Stay organized and keep learning!", reply.Text)

	reply, err = empty.ReviewInsights(ctx, "u1", []string{"Great job", "Very kind"})
	require.NoError(t, err)
	assert.Equal(t, "Your customers seem happy! Keep up the great work.", reply.Text)

	offline := NewAssistantUseCase(nil, nil)
	reply, err = offline.BusinessAdvice(ctx, "u1", "How do I price?")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
}

func TestAssistant_RateLimited(t *testing.T) {
	uc := NewAssistantUseCase(&stubGenerator{text: "ok"}, ratelimit.NewPerMinute(2))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.BusinessAdvice(ctx, "u1", "tips?")
		require.NoError(t, err)
	}
	_, err := uc.BusinessAdvice(ctx, "u1", "tips?")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))

	_, err = uc.BusinessAdvice(ctx, "u2", "tips?")
	assert.NoError(t, err)
}

func TestAssistant_RequiresInput(t *testing.T) {
	uc := NewAssistantUseCase(&stubGenerator{text: "ok"}, nil)
	_, err := uc.ReviewInsights(context.Background(), "u1", nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	_, err = uc.SupportChat(context.Background(), "u1", "x", " ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAssistant_GeminiEmptyAnswerUsesEmptyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[]}}]}`))
	}))
	defer srv.Close()

	gemini, err := genai.NewGeminiClient(context.Background(), "k", "test-model", srv.URL)
	require.NoError(t, err)
	uc := NewAssistantUseCase(gemini, nil)

	reply, err := uc.ServiceDescription(context.Background(), "u1", "Dog walking", "Community & Errands")
	require.NoError(t, err)
	assert.True(t, reply.Fallback)
	assert.Equal(t, "I provide high-quality service with a smile!", reply.Text)
}
