package service

import "context"

// TextGenerator turns a natural-language prompt into free-form text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
