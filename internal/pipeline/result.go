package pipeline

import (
	"github.com/labelscan/labelscan/internal/confidence"
	"github.com/labelscan/labelscan/internal/extract"
	"github.com/labelscan/labelscan/internal/ocr"
)

// Dimensions records the pixel size of the decoded source image, before any
// rescaling.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is the complete outcome of processing one label photograph.
//
// Processing degrades rather than fails: a Result is produced for every
// input, and the Error field distinguishes terminal failures (unreadable
// input) from merely-empty extractions. With Error set, the compliance
// fields are all null, the confidence score is 0, and the level is
// VERY_LOW_CONFIDENCE.
type Result struct {
	extract.Fields

	// ConfidenceScore is the overall confidence, 0-1, rounded to four
	// decimals.
	ConfidenceScore float64 `json:"confidenceScore"`
	// ConfidenceLevel is the discrete tier for ConfidenceScore.
	ConfidenceLevel confidence.Level `json:"confidenceLevel"`
	// RegionConfidences lists each processed region's score in region
	// order.
	RegionConfidences []float64 `json:"regionConfidences"`

	// RawTextRegions carries the per-region recognition output for callers
	// that need provenance for extracted values.
	RawTextRegions []ocr.TextRegion `json:"rawTextRegions"`
	// CombinedText is all region text joined with single spaces, in
	// reading order. Field extraction runs over this.
	CombinedText string `json:"combinedText"`

	// TotalRegionsDetected counts the regions recognition was attempted
	// on, including the whole-image fallback region when detection found
	// nothing.
	TotalRegionsDetected int `json:"totalRegionsDetected"`
	// RegionsProcessed counts the regions that yielded usable text.
	RegionsProcessed int `json:"regionsProcessed"`
	// LowConfidenceRegions counts processed regions scoring below the
	// review threshold.
	LowConfidenceRegions int `json:"lowConfidenceRegions"`

	// ProcessingTimeMs is elapsed wall-clock time in milliseconds, rounded
	// to two decimals.
	ProcessingTimeMs float64 `json:"processingTimeMs"`
	// ImageDimensions is the decoded input size before normalization.
	ImageDimensions Dimensions `json:"imageDimensions"`

	// NeedsReview is true when the confidence level is LOW_CONFIDENCE or
	// VERY_LOW_CONFIDENCE.
	NeedsReview bool `json:"needsReview"`

	// Error describes a terminal failure; empty for successful runs.
	Error string `json:"error,omitempty"`
}

// errorResult builds the terminal failure shape: error message set, zero
// confidence, every compliance field null.
func errorResult(err error) *Result {
	return &Result{
		ConfidenceLevel:   confidence.VeryLow,
		RegionConfidences: []float64{},
		RawTextRegions:    []ocr.TextRegion{},
		NeedsReview:       true,
		Error:             err.Error(),
	}
}
