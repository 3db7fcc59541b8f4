package ports

import (
	"context"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

// ScreenshotOracle extracts payment fields from a hosted image.
// Failures unwrap to domain.ErrIntegration.
type ScreenshotOracle interface {
	Extract(ctx context.Context, imageURL string) (*domain.ScreenshotAnalysis, error)
}

type ImageHost interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}
