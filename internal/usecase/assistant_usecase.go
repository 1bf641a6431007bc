package usecase

import (
	"context"
	"fmt"
	"strings"

	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/metrics"
	"skillio/internal/infrastructure/ratelimit"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
)

const (
	featureSupport     = "support"
	featureDescription = "service_description"
	featureAdvice      = "business_advice"
	featureReviews     = "review_insights"
)

// fallbacks holds the canned replies per feature: first for an empty answer, second for a
// failed call.
var fallbacks = map[string][2]string{
	featureSupport: {
		"I'm sorry, I'm having a little trouble thinking. Can you try again?",
		"Oops! My brain hit a little snag. Try asking me something else!",
	},
	featureDescription: {
		"I provide high-quality service with a smile!",
		"Friendly and reliable service for the neighborhood!",
	},
	featureAdvice: {
		"Keep working hard and always be kind to your customers!",
		"Stay organized and keep learning!",
	},
	featureReviews: {
		"Your customers seem happy! Keep up the great work.",
		"You're doing a great job! Keep focusing on your customers.",
	},
}

type AssistantReply struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// AssistantUseCase fronts the text generator. Generator failures never surface to the
// caller; they turn into a canned reply.
type AssistantUseCase struct {
	generator service.TextGenerator
	limiter   *ratelimit.RateLimiter
}

// NewAssistantUseCase accepts a nil generator, in which case every call falls back.
func NewAssistantUseCase(generator service.TextGenerator, limiter *ratelimit.RateLimiter) *AssistantUseCase {
	return &AssistantUseCase{
		generator: generator,
		limiter:   limiter,
	}
}

func (uc *AssistantUseCase) SupportChat(ctx context.Context, callerKey, userName, question string) (*AssistantReply, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.BadRequest("Question is required", nil)
	}
	if userName == "" {
		userName = "friend"
	}
	prompt := fmt.Sprintf(`You are Rumi, a friendly AI support friend for Skillio, a platform for young entrepreneurs.
The CEO of Skillio is Kyla Ndungu, a young girl from Kenya.
Your tone is encouraging, clear, and helpful. You help users with questions about how the app works, booking services, and general support.
Current user's name is %s.
Keep answers simple and suitable for all ages. If asked about technical issues, suggest checking the 'Contact Support' section for human help.
User question: %s`, userName, question)
	return uc.generate(ctx, callerKey, featureSupport, prompt)
}

func (uc *AssistantUseCase) ServiceDescription(ctx context.Context, callerKey, title, category string) (*AssistantReply, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.BadRequest("Service title is required", nil)
	}
	prompt := fmt.Sprintf(`I am an 11-year-old starting a business for %q in the %q category.
Please write a friendly, professional, and short description (max 3 sentences) that I can use on my website to attract customers.
Make it sound like it's coming from a smart and hardworking student.`, title, category)
	return uc.generate(ctx, callerKey, featureDescription, prompt)
}

func (uc *AssistantUseCase) BusinessAdvice(ctx context.Context, callerKey, query string) (*AssistantReply, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.BadRequest("Question is required", nil)
	}
	prompt := fmt.Sprintf(`I am an 11-year-old entrepreneur. I have a question about running my small business: %q.
Please give me 3 simple, encouraging tips.`, query)
	return uc.generate(ctx, callerKey, featureAdvice, prompt)
}

func (uc *AssistantUseCase) ReviewInsights(ctx context.Context, callerKey string, reviews []string) (*AssistantReply, error) {
	if len(reviews) == 0 {
		return nil, errors.BadRequest("At least one review is required", nil)
	}
	prompt := fmt.Sprintf(`I am an 11-year-old business owner. Here are my latest customer reviews:
- %s

Please analyze these and tell me:
1. What is the overall "Happiness Score" (out of 100)?
2. One thing I'm doing great.
3. One thing I could do even better next time.
Keep it encouraging and simple for an 11-year-old.`, strings.Join(reviews, "\n- "))
	return uc.generate(ctx, callerKey, featureReviews, prompt)
}

func (uc *AssistantUseCase) generate(ctx context.Context, callerKey, feature, prompt string) (*AssistantReply, error) {
	if uc.limiter != nil {
		if ok, retry := uc.limiter.Allow(callerKey); !ok {
			metrics.RecordAssistant(feature, "limited")
			return nil, errors.TooManyRequests(fmt.Sprintf("Too many assistant requests, retry in %s", retry.Round(1e9)))
		}
	}

	canned := fallbacks[feature]
	if uc.generator == nil {
		metrics.RecordAssistant(feature, "fallback")
		return &AssistantReply{Text: canned[1], Fallback: true}, nil
	}

	text, err := uc.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"feature": feature,
			"error":   err.Error(),
		}).Warn("assistant generation failed")
		metrics.RecordAssistant(feature, "fallback")
		return &AssistantReply{Text: canned[1], Fallback: true}, nil
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordAssistant(feature, "empty")
		return &AssistantReply{Text: canned[0], Fallback: true}, nil
	}

	metrics.RecordAssistant(feature, "ok")
	return &AssistantReply{Text: text}, nil
}
