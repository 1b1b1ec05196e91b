package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/nfnt/resize"
)

const (
	DefaultThumbnailSize uint = 300

	// maxSourcePixels bounds what a remote image may decode to.
	maxSourcePixels = 50_000_000
)

type ThumbnailServicer interface {
	Thumbnail(ctx context.Context, databaseID string) ([]byte, error)
}

type ThumbnailServiceConfig struct {
	Builder locator.Builder
	Fetcher Fetcher
	MaxSize uint
}

/*
ThumbnailService downscales catalog artifacts for the browse grid. Results
are not cached; every call fetches the original.
*/
type ThumbnailService struct {
	builder locator.Builder
	fetcher Fetcher
	maxSize uint
}

func NewThumbnailService(config ThumbnailServiceConfig) ThumbnailService {
	if config.MaxSize == 0 {
		config.MaxSize = DefaultThumbnailSize
	}

	return ThumbnailService{
		builder: config.Builder,
		fetcher: config.Fetcher,
		maxSize: config.MaxSize,
	}
}

func (s ThumbnailService) Thumbnail(ctx context.Context, databaseID string) ([]byte, error) {
	var (
		err  error
		body []byte
		cfg  image.Config
		img  image.Image
		buf  bytes.Buffer
	)

	u := s.builder.ByDatabaseID(databaseID)

	if body, err = s.fetcher.FetchBytes(ctx, u); err != nil {
		return nil, fmt.Errorf("error downloading image from '%s': %w", u, err)
	}

	if cfg, _, err = image.DecodeConfig(bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("error decoding image from '%s': %w", u, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxSourcePixels {
		return nil, fmt.Errorf("image from '%s' is %dx%d, which is outside the allowed size", u, cfg.Width, cfg.Height)
	}

	if img, _, err = image.Decode(bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("error decoding image from '%s': %w", u, err)
	}

	if err = jpeg.Encode(&buf, s.resize(img), &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("error encoding thumbnail for '%s': %w", databaseID, err)
	}

	return buf.Bytes(), nil
}

func (s ThumbnailService) resize(img image.Image) image.Image {
	var newWidth, newHeight uint

	/*
	 * Scale so the longest edge equals maxSize. Images already within
	 * bounds are left alone.
	 */
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if max(width, height) <= s.maxSize {
		return img
	}

	if width > height {
		newWidth = s.maxSize
		newHeight = uint(float64(height) * (float64(s.maxSize) / float64(width)))
	} else {
		newHeight = s.maxSize
		newWidth = uint(float64(width) * (float64(s.maxSize) / float64(height)))
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
