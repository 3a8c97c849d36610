// Package pipeline wires normalization, detection, recognition, extraction,
// and confidence scoring into the end-to-end label reading flow.
//
// The central contract is graceful degradation: Process and its file/URL
// wrappers always return a Result and never an error. Recoverable problems
// (a region that fails OCR, an image with no detectable regions) shrink the
// result; only unreadable input produces a terminal Result with the Error
// field set. This lets bulk audit callers process thousands of photographs
// without wrapping every call in failure handling.
//
// Construction is explicit dependency injection via Config: tests swap the
// OCR engine for a stub, production uses the system Tesseract. A Pipeline
// is immutable and safe for concurrent use, so one instance serves an
// entire batch run.
package pipeline
