// Package extract pulls structured legal-metrology fields out of raw OCR
// text.
//
// Indian packaged-goods regulation requires specific declarations on every
// label: maximum retail price, net quantity, manufacture and expiry dates,
// country of origin, manufacturer and importer identities, consumer care
// contact, batch number, and category-specific license marks (FSSAI for
// food, BIS for electronics). This package recognizes those declarations
// in the noisy, inconsistently formatted text OCR produces.
//
// # Matching Strategy
//
// Every field is matched with case-insensitive patterns built around the
// keywords that anchor each declaration ("MRP", "Net Wt", "Best Before",
// "Mfg by", ...), with generous tolerance for the spacing and punctuation
// variation OCR introduces. Keyword-anchored alternates always precede
// bare-shape alternates within a pattern, so "MRP ₹ 99" wins over a lone
// "₹ 99" elsewhere in the text.
//
// Dates get special treatment: when neither a manufacture nor an expiry
// keyword matches anywhere, a fallback scans for bare date shapes and
// assigns them positionally (first is manufacture, second expiry; a lone
// date on food is the expiry).
//
// # Absent vs Empty
//
// Extracted fields are *string pointers: nil means the declaration was not
// found, which downstream compliance checks treat differently from a found
// but empty value. Fields marshal to JSON null when absent.
//
// # Limitations
//
// Extraction quality is bounded by OCR quality. The patterns tolerate
// spacing noise but not character substitutions; "MRF ₹99" will not match
// MRP. No semantic validation happens here: a matched expiry date before
// the manufacture date is passed through untouched.
package extract
