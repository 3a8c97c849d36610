package ocr

import "image"

// Word is a single token recognized by an OCR engine.
type Word struct {
	// Text is the recognized token with surrounding whitespace removed.
	Text string
	// Confidence is the engine's certainty on its native 0-100 scale.
	Confidence float64
	// Box is the word's location within the image the engine was given.
	Box image.Rectangle
}

// Engine recognizes text in a preprocessed image. Implementations should
// treat the image as a single uniform block of text; region segmentation
// happens before the engine is invoked.
//
// Implementations must be safe for concurrent use.
type Engine interface {
	Recognize(img image.Image) ([]Word, error)
}
