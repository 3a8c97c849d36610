package extract

import (
	"regexp"
	"strings"
)

// Extractor applies the compliance field patterns to OCR text. All patterns
// are compiled once at construction, so an Extractor is immutable and safe
// for concurrent use.
//
// Fields are evaluated in a fixed order: MRP, net quantity, manufacture
// date, expiry date (with a shared bare-date fallback when neither matched),
// country of origin, manufacturer, importer, consumer care, batch number,
// FSSAI license, BIS certification. Within each pattern the alternates are
// tried left to right, so keyword-anchored forms win over bare ones.
type Extractor struct {
	mrp          *regexp.Regexp
	netQuantity  *regexp.Regexp
	genericDate  *regexp.Regexp
	mfgDate      *regexp.Regexp
	expDate      *regexp.Regexp
	country      *regexp.Regexp
	manufacturer *regexp.Regexp
	importer     *regexp.Regexp
	consumerCare *regexp.Regexp
	batch        *regexp.Regexp
	fssai        *regexp.Regexp
	bis          *regexp.Regexp
}

// NewExtractor compiles the field patterns. All matching is
// case-insensitive and tolerant of the spacing and punctuation variation
// OCR introduces around keywords.
func NewExtractor() *Extractor {
	return &Extractor{
		mrp:          regexp.MustCompile(`(?i)(?:MRP|M\.R\.P\.?|Price|PRICE)[\s:₹.]*[₹Rs.]*\s*([0-9,]+(?:\.[0-9]{1,2})?)|[₹][\s]*([0-9,]+(?:\.[0-9]{1,2})?)|Rs\.?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
		netQuantity:  regexp.MustCompile(`(?i)(?:Net\s*(?:Wt\.?|Weight|Qty\.?|Quantity|Contents?)|Contents?)[\s:]*([0-9]+(?:\.[0-9]+)?\s*(?:g|gm|gms|kg|kgs|ml|mL|l|L|ltr|litre|liters?|oz|lb)s?)|([0-9]+(?:\.[0-9]+)?\s*(?:g|gm|gms|kg|kgs|ml|mL|l|L|ltr|litre|liters?))\b`),
		genericDate:  regexp.MustCompile(`(?i)([0-9]{1,2}[\/\-\.][0-9]{1,2}[\/\-\.][0-9]{2,4})|([0-9]{1,2}[\/\-][0-9]{2,4})|([A-Za-z]{3,9}[\s,]*[0-9]{1,2}[,]?\s*[0-9]{2,4})|([0-9]{1,2}[\s\-]*[A-Za-z]{3,9}[\s,]*[0-9]{2,4})`),
		mfgDate:      regexp.MustCompile(`(?i)(?:Mfg\.?|Mfd\.?|Manufacturing|Manufactured|Packed|Packing|Pkg\.?)[\s:]*(?:Date)?[\s:]*([0-9]{1,2}[\/\-\.][0-9]{1,2}[\/\-\.][0-9]{2,4}|[0-9]{1,2}[\/\-][0-9]{2,4}|[A-Za-z]{3,9}[\s,]*[0-9]{1,2}[,]?\s*[0-9]{2,4}|[0-9]{1,2}[\s\-]*[A-Za-z]{3,9}[\s,]*[0-9]{2,4})`),
		expDate:      regexp.MustCompile(`(?i)(?:Exp\.?|Expiry|Expires?|Best\s*Before|BB|Use\s*By|Use\s*Before)[\s:]*(?:Date)?[\s:]*([0-9]{1,2}[\/\-\.][0-9]{1,2}[\/\-\.][0-9]{2,4}|[0-9]{1,2}[\/\-][0-9]{2,4}|[A-Za-z]{3,9}[\s,]*[0-9]{1,2}[,]?\s*[0-9]{2,4}|[0-9]{1,2}[\s\-]*[A-Za-z]{3,9}[\s,]*[0-9]{2,4}|[0-9]+\s*(?:months?|days?|years?)\s*(?:from\s*(?:mfg|manufacturing|packing))?)`),
		country:      regexp.MustCompile(`(?i)(?:Country\s*of\s*Origin|Made\s*in|Product\s*of|Manufactured\s*in|Origin)[\s:]*([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
		manufacturer: regexp.MustCompile(`(?i)(?:Mfg\.?\s*(?:by)?|Manufactured\s*by|Packed\s*by|Packer|Marketer|Marketed\s*by)[\s:]*([A-Za-z0-9][A-Za-z0-9\s,\.&\-]+(?:Ltd\.?|Pvt\.?|Inc\.?|LLC|Co\.?|Corporation|Industries)?)`),
		importer:     regexp.MustCompile(`(?i)(?:Imported\s*by|Importer)[\s:]*([A-Za-z0-9][A-Za-z0-9\s,\.&\-]+(?:Ltd\.?|Pvt\.?|Inc\.?|LLC|Co\.?)?)`),
		consumerCare: regexp.MustCompile(`(?i)(?:Consumer\s*Care|Customer\s*Care|Helpline|Contact|Toll\s*Free)[\s:]*([0-9\-\+\s\(\)]{8,20})|(1800[\-\s]*[0-9\-\s]{6,12})`),
		batch:        regexp.MustCompile(`(?i)(?:Batch|Lot|B\.?\s*No\.?|L\.?\s*No\.?)[\s:]*([A-Za-z0-9\-\/]{4,20})`),
		fssai:        regexp.MustCompile(`(?i)(?:FSSAI|Lic\.?\s*No\.?|License\s*No\.?)[\s:]*([0-9]{10,14})|\b([0-9]{14})\b`),
		bis:          regexp.MustCompile(`(?i)(?:BIS|ISI|IS[\s:]*[0-9]+)[\s:]*([A-Za-z0-9\-\/]+)|(?:R-[0-9]{7,})`),
	}
}

// Extract scans OCR text for compliance declarations. The category gates
// fields that apply only to particular product types; CategoryUnspecified
// attempts all of them. Fields whose pattern finds nothing stay nil.
func (e *Extractor) Extract(text string, category Category) Fields {
	var fields Fields

	if m := e.mrp.FindStringSubmatch(text); m != nil {
		if v := firstGroup(m); v != "" {
			fields.MRP = stringPtr("₹" + strings.ReplaceAll(v, ",", ""))
		}
	}

	if m := e.netQuantity.FindStringSubmatch(text); m != nil {
		if v := firstGroup(m); v != "" {
			fields.NetQuantity = stringPtr(v)
		}
	}

	e.extractDates(text, category, &fields)

	if m := e.country.FindStringSubmatch(text); m != nil {
		fields.CountryOfOrigin = stringPtr(strings.TrimSpace(m[1]))
	}

	if m := e.manufacturer.FindStringSubmatch(text); m != nil {
		fields.Manufacturer = stringPtr(strings.TrimSpace(m[1]))
	}

	if m := e.importer.FindStringSubmatch(text); m != nil {
		fields.Importer = stringPtr(strings.TrimSpace(m[1]))
	}

	if m := e.consumerCare.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(firstGroup(m)); v != "" {
			fields.ConsumerCare = stringPtr(v)
		}
	}

	if m := e.batch.FindStringSubmatch(text); m != nil {
		fields.BatchNumber = stringPtr(m[1])
	}

	if category == CategoryFood || category == CategoryUnspecified {
		if m := e.fssai.FindStringSubmatch(text); m != nil {
			if v := firstGroup(m); len(v) >= 10 {
				fields.FSSAILicense = stringPtr(v)
			}
		}
	}

	if category == CategoryElectronics || category == CategoryUnspecified {
		if m := e.bis.FindStringSubmatch(text); m != nil {
			v := m[1]
			if v == "" {
				// The registration-number alternate has no group; the
				// whole match is the value.
				v = m[0]
			}
			fields.BISCertification = stringPtr(v)
		}
	}

	return fields
}

// extractDates fills the manufacture and expiry dates. Keyword-anchored
// matches win; only when neither keyword appears anywhere does the
// bare-date fallback run. Two or more bare dates are read as
// manufacture-then-expiry, the usual printing order; a lone bare date on a
// food label is taken as the expiry, otherwise as the manufacture date.
func (e *Extractor) extractDates(text string, category Category, fields *Fields) {
	if m := e.mfgDate.FindStringSubmatch(text); m != nil {
		fields.ManufactureDate = stringPtr(m[1])
	}
	if m := e.expDate.FindStringSubmatch(text); m != nil {
		fields.ExpiryDate = stringPtr(m[1])
	}
	if fields.ManufactureDate != nil || fields.ExpiryDate != nil {
		return
	}

	matches := e.genericDate.FindAllStringSubmatch(text, -1)
	switch {
	case len(matches) >= 2:
		if v := firstGroup(matches[0]); v != "" {
			fields.ManufactureDate = stringPtr(v)
		}
		if v := firstGroup(matches[1]); v != "" {
			fields.ExpiryDate = stringPtr(v)
		}
	case len(matches) == 1:
		v := firstGroup(matches[0])
		if v == "" {
			return
		}
		if category == CategoryFood {
			fields.ExpiryDate = stringPtr(v)
		} else {
			fields.ManufactureDate = stringPtr(v)
		}
	}
}

// firstGroup returns the first non-empty capture group of a match.
func firstGroup(match []string) string {
	for _, group := range match[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}

func stringPtr(s string) *string {
	return &s
}
