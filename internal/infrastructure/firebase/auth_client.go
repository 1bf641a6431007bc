package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"skillio/internal/infrastructure/token"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks a Firebase ID token and maps its claims onto a customer identity.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (*token.Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	id := &token.Identity{UID: result.UID, Kind: token.KindUser}
	if name, ok := result.Claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := result.Claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return user.UID, nil
}
