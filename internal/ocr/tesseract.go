package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguages are the recognition languages used when none are
// configured. Indian packaging regularly mixes English and Hindi on the
// same panel.
var DefaultLanguages = []string{"eng", "hin"}

// Tesseract is an Engine backed by the system Tesseract installation via
// gosseract.
//
// Each Recognize call creates and closes its own gosseract client: the
// client wraps a native Tesseract API handle that is not safe for
// concurrent use, so per-call construction keeps the Engine shareable
// across goroutines. Client setup is cheap next to the recognition itself.
type Tesseract struct {
	languages []string
}

// NewTesseract creates a Tesseract engine recognizing the given languages,
// falling back to DefaultLanguages when none are given. The tesseract
// libraries and matching language data must be installed on the host.
func NewTesseract(languages ...string) *Tesseract {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &Tesseract{languages: languages}
}

// Recognize runs Tesseract over the image and returns the recognized words
// with their confidences (0-100) and locations. Words that are empty after
// trimming whitespace are dropped.
func (t *Tesseract) Recognize(img image.Image) ([]Word, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for recognition: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return nil, fmt.Errorf("failed to set languages %v: %w", t.languages, err)
	}
	// The input is one preprocessed block; telling Tesseract so keeps its
	// page layout analysis from splitting it further.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Confidence: float64(box.Confidence),
			Box:        box.Box,
		})
	}
	return words, nil
}
