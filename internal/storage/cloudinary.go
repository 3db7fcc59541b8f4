package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/integration"
	"github.com/wb-go/wbf/logger"
)

const DefaultFolder = "payment-screenshots"

type assetUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryHost stores raw screenshot uploads and hands back a public URL
// the screenshot oracle can fetch.
type CloudinaryHost struct {
	upload assetUploader
	folder string
	policy integration.Policy
	logger logger.Logger
}

func NewCloudinaryHost(cloud, key, secret, folder string, policy integration.Policy, log logger.Logger) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cloud, key, secret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	if folder == "" {
		folder = DefaultFolder
	}

	return &CloudinaryHost{
		upload: &cld.Upload,
		folder: folder,
		policy: policy,
		logger: log,
	}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image is empty", domain.ErrValidation)
	}

	params := uploader.UploadParams{
		Folder:       h.folder,
		ResourceType: "image",
		Tags:         api.CldAPIArray{"payment"},
	}
	if name := publicID(filename); name != "" {
		params.PublicID = name
		params.UniqueFilename = api.Bool(true)
	}

	var url string
	err := h.policy.Call(ctx, "cloudinary upload", func(ctx context.Context) error {
		res, err := h.upload.Upload(ctx, bytes.NewReader(data), params)
		if err != nil {
			return err
		}
		if res.Error.Message != "" {
			return integration.Permanent(errors.New(res.Error.Message))
		}
		if res.SecureURL == "" {
			return integration.Permanent(errors.New("no secure url returned"))
		}
		url = res.SecureURL
		return nil
	})
	if err != nil {
		return "", err
	}

	h.logger.Info("screenshot uploaded",
		logger.String("url", url),
		logger.Int("bytes", len(data)),
	)
	return url, nil
}

// publicID turns "IMG 2025-06-01.PNG" into "img_2025-06-01".
func publicID(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "." || base == "/" {
		return ""
	}
	base = strings.ToLower(strings.Join(strings.Fields(base), "_"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return -1
		}
	}, base)
}
