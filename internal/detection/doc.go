// Package detection locates candidate text regions in product label
// photographs.
//
// The package implements the segmentation half of the label reading
// pipeline: given a normalized photograph of packaging, it returns the
// bounding boxes of areas likely to contain printed declarations, ordered
// the way a person would read them. Recognition of the text inside the
// boxes is a separate concern handled by the ocr package.
//
// # Detection Pipeline
//
// The primary path is edge-based and tuned for printed text on packaging:
//
//  1. Contrast enhancement: grayscale conversion, edge-preserving
//     bilateral smoothing, then contrast-limited adaptive histogram
//     equalization so faint print survives
//  2. Canny edge detection with hysteresis thresholding
//  3. Anisotropic dilation with a wide flat kernel, fusing the edges of
//     adjacent characters into connected line-shaped regions
//  4. Connected-component analysis to extract bounding boxes
//  5. Area and aspect-ratio filtering to reject decorations, borders, and
//     the label outline itself, followed by padding so crops keep their
//     edge glyphs
//
// When the edge path finds nothing, a fallback detector thresholds the
// grayscale image at several levels and keeps dark connected components of
// glyph-like size, merging the per-level duplicates. This catches
// low-contrast and heavily compressed photographs the edge detector cannot
// handle.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Boxes are expressed in the coordinate space of the image given to
// Detect. Callers that rescale images must detect and crop on the same
// scaled image so the two stay aligned.
//
// # Reading Order
//
// Returned boxes are sorted top-to-bottom, left-to-right: boxes are
// grouped into rows by vertical center proximity, then ordered by left
// edge within each row. Downstream field extraction concatenates region
// text in this order, so declarations split across side-by-side regions
// stay adjacent.
//
// # Performance Considerations
//
// Detection iterates over all pixels several times; the bilateral filter
// in particular is O(pixels x window area). Inputs are expected to be
// pre-scaled to around 1200px width, where a full pass stays well under a
// second on current hardware. Very large unscaled inputs cost
// quadratically more.
//
// # Limitations
//
// The detector finds text-shaped structure, not text: dense ornaments,
// barcodes, and ingredient tables can produce regions that contain no
// useful declarations, and heavily stylized or curved print can be missed.
// The downstream recognizer and extractor are expected to tolerate both
// false positives and gaps.
package detection
