package service

import (
	"context"
	"io"
)

// ImageStore keeps portfolio and catalog images and returns their public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
	DeleteImage(ctx context.Context, url string) error
}
