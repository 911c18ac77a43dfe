package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"justchoose/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}}
	svc := NewQRCodeService(cfg)

	pngBytes, err := svc.GeneratePNG("https://justchoosealready.com/spins/0b5f/replay")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePNG_Empty(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GeneratePNG("")
	assert.Error(t, err)
}
