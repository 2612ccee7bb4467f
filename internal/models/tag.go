package models

// Tag classifies a product's origin/tariff status. The codes are stable
// identifiers shared with the frontend and stored as-is in Mongo.
type Tag string

const (
	TagAmericanMade Tag = "AM"
	TagTariffFree   Tag = "TF"
	// TagAssembledUSA marks products assembled in the USA from imported,
	// tariffed parts.
	TagAssembledUSA Tag = "AUS-T"
	TagBoth         Tag = "Both"
	TagNone         Tag = "None"
)

// IsValid reports whether t is one of the known tag codes.
func (t Tag) IsValid() bool {
	switch t {
	case TagAmericanMade, TagTariffFree, TagAssembledUSA, TagBoth, TagNone:
		return true
	}
	return false
}

func (t Tag) String() string {
	return string(t)
}
