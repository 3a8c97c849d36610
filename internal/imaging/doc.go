// Package imaging provides the image processing primitives for the label
// reading pipeline.
//
// The package covers three concerns: normalization (decoding raw bytes and
// rescaling them to the canonical working width), preprocessing (the
// grayscale, filtering, and binarization chains that feed detection and
// recognition), and debug annotation (region overlay rendering). All
// operations work with standard Go image.Image types and a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and
// Y increases downward.
//
// # Supported Formats
//
// Normalize decodes PNG, JPEG, GIF, WebP, BMP, and TIFF. The format
// registry is populated via blank imports, so linking this package is
// enough to handle all six.
//
// # Grayscale Planes
//
// The filtering functions operate on [][]float64 intensity grids with
// values in the 0-255 range, indexed [y][x]. Planes decouple the numeric
// work from image type conversions and keep intermediate precision between
// chained filters; GrayPlane produces one from any image.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently on different
// inputs. None of them mutate their input image or plane.
//
// # Performance Considerations
//
// BilateralFilter is the most expensive operation at O(pixels x window
// area); at the default 1200px working width a full preprocessing pass is
// subsecond. Callers feeding larger images pay quadratically.
package imaging
