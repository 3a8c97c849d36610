package ocr

import (
	"image"
	"log"
	"strings"

	"github.com/labelscan/labelscan/internal/detection"
	"github.com/labelscan/labelscan/internal/imaging"
)

// DefaultMinWordConfidence is the word confidence floor (0-100 scale) below
// which recognized words are discarded as noise.
const DefaultMinWordConfidence = 60.0

// TextRegion is the recognized text of one detected region. The embedded
// box keeps the region's location in normalized-image coordinates.
type TextRegion struct {
	detection.Box

	// Text is the region's surviving words joined with single spaces.
	Text string `json:"text"`

	// Confidence is the mean confidence of the surviving words, normalized
	// to 0-1.
	Confidence float64 `json:"confidence"`

	// Index is the region's position in the detector's reading order.
	// Indices can have gaps: a region that yields no usable text keeps its
	// slot but produces no TextRegion.
	Index int `json:"regionIndex"`
}

// Recognizer runs an OCR engine over detected regions of a normalized
// image and filters the results down to usable text.
type Recognizer struct {
	engine            Engine
	minWordConfidence float64
	targetWidth       int
}

// NewRecognizer creates a Recognizer. minWordConfidence is on the engine's
// 0-100 scale; non-positive values select DefaultMinWordConfidence.
// targetWidth is the width crops are upscaled to before recognition.
func NewRecognizer(engine Engine, minWordConfidence float64, targetWidth int) *Recognizer {
	if minWordConfidence <= 0 {
		minWordConfidence = DefaultMinWordConfidence
	}
	if targetWidth <= 0 {
		targetWidth = imaging.DefaultTargetWidth
	}
	return &Recognizer{
		engine:            engine,
		minWordConfidence: minWordConfidence,
		targetWidth:       targetWidth,
	}
}

// RecognizeRegions crops each box from the image, preprocesses the crop,
// and runs the engine over it. Regions whose recognition fails or yields no
// words above the confidence floor are dropped; one bad region never aborts
// the rest. The returned slice is in box order and is never nil.
func (r *Recognizer) RecognizeRegions(img image.Image, boxes []detection.Box) []TextRegion {
	regions := make([]TextRegion, 0, len(boxes))
	for i, box := range boxes {
		region, ok := r.recognizeRegion(img, box, i)
		if !ok {
			continue
		}
		regions = append(regions, region)
	}
	return regions
}

func (r *Recognizer) recognizeRegion(img image.Image, box detection.Box, index int) (TextRegion, bool) {
	cropped, err := imaging.CropRect(img, box.Rect())
	if err != nil {
		log.Printf("skipping region %d: %v", index, err)
		return TextRegion{}, false
	}

	prepared := imaging.PrepareForRecognition(cropped, r.targetWidth)

	words, err := r.engine.Recognize(prepared)
	if err != nil {
		log.Printf("OCR failed for region %d: %v", index, err)
		return TextRegion{}, false
	}

	var texts []string
	var sum float64
	for _, w := range words {
		if w.Confidence < r.minWordConfidence {
			continue
		}
		texts = append(texts, w.Text)
		sum += w.Confidence
	}
	if len(texts) == 0 {
		return TextRegion{}, false
	}

	return TextRegion{
		Box:        box,
		Text:       strings.Join(texts, " "),
		Confidence: sum / float64(len(texts)) / 100.0,
		Index:      index,
	}, true
}
