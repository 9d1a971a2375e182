package imageproc

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder in case upstream returns JPEG
	"image/png"

	"golang.org/x/image/draw"
)

// Processor validates and post-processes images returned by the synthesis API.
type Processor struct {
	maxPreviewEdge int
}

// NewProcessor creates a new image processor.
func NewProcessor(maxPreviewEdge int) *Processor {
	if maxPreviewEdge <= 0 {
		maxPreviewEdge = 512
	}
	return &Processor{
		maxPreviewEdge: maxPreviewEdge,
	}
}

// DataURL validates that data is a decodable image and wraps it in a
// self-describing data URL the browser can render directly.
func (p *Processor) DataURL(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return fmt.Sprintf("data:image/%s;base64,%s", format, base64.StdEncoding.EncodeToString(data)), nil
}

// Preview downscales an image so its longest edge fits maxPreviewEdge,
// preserving aspect ratio, and re-encodes it as PNG.
func (p *Processor) Preview(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= p.maxPreviewEdge && h <= p.maxPreviewEdge {
		return data, nil
	}

	if w >= h {
		h = h * p.maxPreviewEdge / w
		w = p.maxPreviewEdge
	} else {
		w = w * p.maxPreviewEdge / h
		h = p.maxPreviewEdge
	}

	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
