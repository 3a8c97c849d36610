// Package confidence turns per-region OCR confidence scores into the
// summary metrics callers use to decide whether a result is trustworthy.
package confidence

// Level classifies an overall confidence score into a discrete quality
// tier. The string values are part of the output contract; downstream
// systems branch on them.
type Level string

const (
	High    Level = "HIGH_CONFIDENCE"
	Medium  Level = "MEDIUM_CONFIDENCE"
	Low     Level = "LOW_CONFIDENCE"
	VeryLow Level = "VERY_LOW_CONFIDENCE"
)

const (
	// Level boundaries, inclusive lower bounds: a score exactly on a
	// boundary gets the higher tier.
	HighFloor   = 0.85
	MediumFloor = 0.70
	LowFloor    = 0.50

	// LowRegionThreshold is the per-region score below which a region
	// counts toward the low-confidence region tally.
	LowRegionThreshold = 0.65
)

// Metrics summarizes the confidence of one processing run.
type Metrics struct {
	// Overall is the mean of the region scores, 0 when there are none.
	Overall float64
	// Level is the tier Overall falls into.
	Level Level
	// RegionConfidences preserves the per-region scores in region order.
	RegionConfidences []float64
	// LowConfidenceCount is how many regions scored below
	// LowRegionThreshold.
	LowConfidenceCount int
	// NeedsReview is true when the level calls for manual verification.
	NeedsReview bool
}

// LevelFor returns the tier for an overall score.
func LevelFor(score float64) Level {
	switch {
	case score >= HighFloor:
		return High
	case score >= MediumFloor:
		return Medium
	case score >= LowFloor:
		return Low
	default:
		return VeryLow
	}
}

// NeedsReview reports whether results at this level require manual
// verification before being acted on.
func (l Level) NeedsReview() bool {
	return l == Low || l == VeryLow
}

// Aggregate reduces per-region confidence scores (0-1 scale) to summary
// metrics. With no regions at all the result is the floor: overall 0,
// VeryLow, flagged for review.
func Aggregate(scores []float64) Metrics {
	if len(scores) == 0 {
		return Metrics{
			Level:             VeryLow,
			RegionConfidences: []float64{},
			NeedsReview:       true,
		}
	}

	var sum float64
	low := 0
	for _, s := range scores {
		sum += s
		if s < LowRegionThreshold {
			low++
		}
	}

	overall := sum / float64(len(scores))
	level := LevelFor(overall)
	return Metrics{
		Overall:            overall,
		Level:              level,
		RegionConfidences:  scores,
		LowConfidenceCount: low,
		NeedsReview:        level.NeedsReview(),
	}
}
