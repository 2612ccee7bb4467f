package affiliate

import (
	"strings"

	"github.com/patriotcart/savings-api/internal/models"
)

var (
	americanMadeKeywords = []string{
		"made in usa",
		"american made",
		"manufactured in usa",
		"usa made",
		"proudly made in usa",
	}
	tariffFreeKeywords = []string{
		"tariff free",
		"no tariff",
		"duty free",
		"tariff exempt",
		"zero tariff",
	}
	assembledUSAKeywords = []string{
		"assembled in usa",
		"usa assembly",
		"american assembly",
	}
)

// DetectTag classifies a product from its text fields alone. Keyword
// matching is case-insensitive substring search over name, brand and
// description.
//
// The assembled-in-USA set is only consulted when neither the american-made
// nor the tariff-free sets matched, so a product carrying both "assembled in
// usa" and a tariff-free phrase classifies as TariffFree. That asymmetry
// mirrors the tag policy as shipped; see DESIGN.md before changing it.
func DetectTag(p models.LiveProduct) models.Tag {
	text := strings.ToLower(p.Name + " " + p.Brand + " " + p.Description)

	hasAM := containsAny(text, americanMadeKeywords)
	hasTF := containsAny(text, tariffFreeKeywords)

	switch {
	case hasAM && hasTF:
		return models.TagBoth
	case hasAM:
		return models.TagAmericanMade
	case hasTF:
		return models.TagTariffFree
	case containsAny(text, assembledUSAKeywords):
		return models.TagAssembledUSA
	}
	return models.TagNone
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
