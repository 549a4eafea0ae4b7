package utils

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test sinh QR trả về ảnh PNG đọc lại được
func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("a3f5c8e1-0000-4000-8000-123456789abc", 256)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 256, img.Bounds().Dx())
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 256)
	require.Error(t, err)
}
