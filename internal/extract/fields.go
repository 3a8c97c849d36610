package extract

// Fields holds the structured legal-metrology declarations extracted from
// label text. A nil pointer means the field was not found; the distinction
// between absent and empty matters to downstream compliance checks, so
// these marshal as JSON null rather than "".
type Fields struct {
	// MRP is the maximum retail price, normalized to "₹" followed by the
	// numeric amount with thousands separators removed.
	MRP *string `json:"mrp"`

	// NetQuantity is the declared net content, value and unit as printed.
	NetQuantity *string `json:"netQuantity"`

	// ManufactureDate is the manufacturing or packing date as printed.
	ManufactureDate *string `json:"manufactureDate"`

	// ExpiryDate is the expiry or best-before declaration as printed; it
	// may be a relative period such as "6 months from mfg".
	ExpiryDate *string `json:"expiryDate"`

	// CountryOfOrigin is the declared country of origin.
	CountryOfOrigin *string `json:"countryOfOrigin"`

	// Manufacturer is the manufacturer, packer, or marketer name.
	Manufacturer *string `json:"manufacturer"`

	// Importer is the importer name, for imported goods.
	Importer *string `json:"importer"`

	// ConsumerCare is the consumer care contact, usually a phone number.
	ConsumerCare *string `json:"consumerCare"`

	// BatchNumber is the batch or lot identifier.
	BatchNumber *string `json:"batchNumber"`

	// FSSAILicense is the FSSAI license number. Only extracted for food
	// products (or when the category is unspecified).
	FSSAILicense *string `json:"fssaiLicense"`

	// BISCertification is the BIS/ISI certification mark. Only extracted
	// for electronics (or when the category is unspecified).
	BISCertification *string `json:"bisCertification"`
}
