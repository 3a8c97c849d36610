// Package ocr recognizes the text inside detected label regions.
//
// The package has two layers: the Engine interface with its Tesseract
// implementation (via gosseract/v2), and the Recognizer, which drives an
// Engine over a set of detected regions, preprocessing each crop and
// filtering the recognized words down to usable text.
//
// # Prerequisites
//
// The Tesseract engine requires Tesseract installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Language data files are required for each configured language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng tesseract-ocr-hin
//   - Other languages: tesseract-ocr-<lang> packages
//
// The default languages are English and Hindi ("eng", "hin"), matching the
// bilingual declarations on Indian packaging.
//
// # Confidence Scales
//
// Two scales are in play, which is easy to trip over:
//   - Word confidences are on Tesseract's native 0-100 scale; the
//     word-level filter threshold (default 60) is on this scale
//   - Region confidences, the mean of a region's surviving words, are
//     normalized to 0-1 to match the rest of the pipeline
//
// # Degradation
//
// The Recognizer never fails a whole run because of one region: crop
// errors, engine failures, and regions with no words above the confidence
// floor all just drop that region from the output. Callers distinguish
// attempted regions from surviving ones by comparing input boxes with
// returned TextRegions, whose Index field preserves each region's original
// position.
//
// # Performance Considerations
//
// Recognition dominates pipeline cost. Each region pays for client setup,
// crop upscaling, and the recognition itself; images with dozens of
// detected regions take proportionally longer. The Engine contract is
// deliberately concurrency-safe so batch callers can run several images in
// parallel.
package ocr
