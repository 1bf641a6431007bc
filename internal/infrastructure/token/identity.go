package token

import "context"

type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Identity is what a verified bearer token tells us about the caller.
type Identity struct {
	UID   string
	Name  string
	Email string
	Role  string
	Kind  Kind
}

type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
