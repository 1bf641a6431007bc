package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebasesdk "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase services the API talks to.
type Clients struct {
	Firestore *firestore.Client
	Auth      *FirebaseAuthClient
}

// CredentialOptions prefers inline JSON over a key file; with neither set the
// default application credentials are used.
func CredentialOptions(serviceAccountJSON, serviceAccountPath string) []option.ClientOption {
	switch {
	case serviceAccountJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(serviceAccountJSON))}
	case serviceAccountPath != "":
		return []option.ClientOption{option.WithCredentialsFile(serviceAccountPath)}
	}
	return nil
}

func NewClients(ctx context.Context, projectID string, opts ...option.ClientOption) (*Clients, error) {
	app, err := firebasesdk.NewApp(ctx, &firebasesdk.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore: %w", err)
	}

	return &Clients{
		Firestore: firestoreClient,
		Auth:      NewFirebaseAuthClient(authClient),
	}, nil
}

func (c *Clients) Close() error {
	return c.Firestore.Close()
}
