package imaging

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
)

// Processed is a resized, JPEG-encoded avatar image.
type Processed struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Config bounds the avatar size written to storage.
type Config struct {
	MaxWidth  int
	MaxHeight int
	Quality   int // JPEG quality 1-100
}

// DefaultConfig returns the default avatar processing config.
func DefaultConfig() Config {
	return Config{
		MaxWidth:  512,
		MaxHeight: 512,
		Quality:   85,
	}
}

// Processor resizes uploaded profile images.
type Processor struct {
	config Config
}

// NewProcessor creates an image processor.
func NewProcessor(config Config) *Processor {
	return &Processor{config: config}
}

// ProcessAvatar decodes an uploaded image, scales it down to fit the
// configured bounds and re-encodes it as JPEG. Images already within
// bounds are only re-encoded.
func (p *Processor) ProcessAvatar(reader io.Reader) (*Processed, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.config.MaxWidth || bounds.Dy() > p.config.MaxHeight {
		img = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.config.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	final := img.Bounds()
	return &Processed{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		Width:       final.Dx(),
		Height:      final.Dy(),
	}, nil
}
