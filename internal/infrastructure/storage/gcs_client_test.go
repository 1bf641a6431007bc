package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	c := &CloudStorageClient{bucketName: "skillio-media"}

	name, err := c.objectName("https://storage.googleapis.com/skillio-media/public/services/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "public/services/abc.png", name)

	_, err = c.objectName("https://storage.googleapis.com/other-bucket/public/abc.png")
	assert.Error(t, err)

	_, err = c.objectName("https://example.com/abc.png")
	assert.Error(t, err)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".bin", extensionFor("application/octet-stream"))
}
