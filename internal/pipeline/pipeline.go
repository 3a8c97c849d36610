package pipeline

import (
	"fmt"
	"image"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labelscan/labelscan/internal/confidence"
	"github.com/labelscan/labelscan/internal/detection"
	"github.com/labelscan/labelscan/internal/extract"
	"github.com/labelscan/labelscan/internal/imaging"
	"github.com/labelscan/labelscan/internal/ocr"
)

// DefaultFetchTimeout bounds how long a remote image fetch may take.
const DefaultFetchTimeout = 30 * time.Second

// Config assembles a Pipeline. Zero values select sensible defaults, so
// Config{} gives a production pipeline using the system Tesseract.
type Config struct {
	// Engine performs text recognition. Defaults to ocr.NewTesseract().
	Engine ocr.Engine
	// TargetWidth is the normalized working width.
	TargetWidth int
	// MinWordConfidence is the word-level confidence floor, 0-100.
	MinWordConfidence float64
	// Detection parameters; zero value selects detection.DefaultParams().
	Detection detection.Params
	// FetchTimeout bounds remote image downloads.
	FetchTimeout time.Duration
	// UserAgent is sent with remote image requests.
	UserAgent string
	// AnnotateDir, when set, receives a region-overlay PNG per processed
	// image for visual debugging of detection.
	AnnotateDir string
}

// Pipeline converts raw label photographs into structured compliance
// results. Pipelines are immutable after construction and safe for
// concurrent use.
type Pipeline struct {
	targetWidth int
	detector    *detection.Detector
	recognizer  *ocr.Recognizer
	extractor   *extract.Extractor
	client      *http.Client
	userAgent   string
	annotateDir string
}

// New builds a Pipeline from cfg, filling unset fields with defaults.
func New(cfg Config) *Pipeline {
	if cfg.Engine == nil {
		cfg.Engine = ocr.NewTesseract()
	}
	if cfg.TargetWidth <= 0 {
		cfg.TargetWidth = imaging.DefaultTargetWidth
	}
	if cfg.MinWordConfidence <= 0 {
		cfg.MinWordConfidence = ocr.DefaultMinWordConfidence
	}
	if cfg.Detection == (detection.Params{}) {
		cfg.Detection = detection.DefaultParams()
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Pipeline{
		targetWidth: cfg.TargetWidth,
		detector:    detection.NewDetector(cfg.Detection),
		recognizer:  ocr.NewRecognizer(cfg.Engine, cfg.MinWordConfidence, cfg.TargetWidth),
		extractor:   extract.NewExtractor(),
		client:      &http.Client{Timeout: cfg.FetchTimeout},
		userAgent:   cfg.UserAgent,
		annotateDir: cfg.AnnotateDir,
	}
}

// Process runs the full pipeline over raw image bytes and always returns a
// Result, never an error: failures are reported in the Result's Error
// field so batch callers can keep going.
//
// # Stages
//
//  1. Decode and normalize to the target width
//  2. Detect candidate text regions; when none are found, a single region
//     covering the whole image is substituted
//  3. Recognize each region; regions that fail are skipped
//  4. Extract compliance fields from the combined text
//  5. Aggregate confidence and assemble the result
//
// A panic anywhere in processing is recovered and converted into a
// terminal Result rather than escaping to the caller.
func (p *Pipeline) Process(data []byte, category extract.Category) (result *Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("processing panicked: %v", r)
			result = errorResult(fmt.Errorf("processing panicked: %v", r))
		}
	}()

	norm, err := imaging.Normalize(data, p.targetWidth)
	if err != nil {
		log.Printf("image normalization failed: %v", err)
		return errorResult(err)
	}

	img := norm.Image
	bounds := img.Bounds()

	boxes := p.detector.Detect(img)
	if len(boxes) == 0 {
		log.Printf("no text regions detected, falling back to whole-image OCR")
		boxes = []detection.Box{{X: 0, Y: 0, Width: bounds.Dx(), Height: bounds.Dy()}}
	}

	if p.annotateDir != "" {
		p.writeAnnotation(img, boxes)
	}

	regions := p.recognizer.RecognizeRegions(img, boxes)

	texts := make([]string, len(regions))
	scores := make([]float64, len(regions))
	for i, region := range regions {
		texts[i] = region.Text
		scores[i] = region.Confidence
	}
	combined := strings.Join(texts, " ")

	fields := p.extractor.Extract(combined, category)
	metrics := confidence.Aggregate(scores)

	return &Result{
		Fields:               fields,
		ConfidenceScore:      round(metrics.Overall, 4),
		ConfidenceLevel:      metrics.Level,
		RegionConfidences:    metrics.RegionConfidences,
		RawTextRegions:       regions,
		CombinedText:         combined,
		TotalRegionsDetected: len(boxes),
		RegionsProcessed:     len(regions),
		LowConfidenceRegions: metrics.LowConfidenceCount,
		ProcessingTimeMs:     round(float64(time.Since(start))/float64(time.Millisecond), 2),
		ImageDimensions:      Dimensions{Width: norm.OriginalWidth, Height: norm.OriginalHeight},
		NeedsReview:          metrics.NeedsReview,
	}
}

// writeAnnotation saves a region-overlay PNG for the image being processed.
// Annotation failures are logged, never fatal.
func (p *Pipeline) writeAnnotation(img image.Image, boxes []detection.Box) {
	if err := os.MkdirAll(p.annotateDir, 0o755); err != nil {
		log.Printf("failed to create annotation dir: %v", err)
		return
	}

	rects := make([]image.Rectangle, len(boxes))
	for i, b := range boxes {
		rects[i] = b.Rect()
	}
	overlay := imaging.AnnotateRegions(img, rects)

	path := filepath.Join(p.annotateDir, fmt.Sprintf("regions-%d.png", time.Now().UnixNano()))
	if err := imaging.SavePNG(overlay, path); err != nil {
		log.Printf("failed to write annotation overlay: %v", err)
	}
}

// round rounds v to the given number of decimal places, half away from
// zero.
func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
