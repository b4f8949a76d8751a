package validators

import (
	"strings"

	"github.com/vheb/biomap/models"
)

// ValidateSpecies checks a species record before persistence: the scientific
// name and the full taxonomic chain are required, everything else is free
// text and accepted as-is.
func ValidateSpecies(species models.Species) error {
	if strings.TrimSpace(species.ScientificName) == "" {
		return ErrScientificNameIsRequired
	}

	taxonomy := []string{
		species.Kingdom, species.Phylum, species.Class,
		species.Order, species.Family, species.Genus,
	}
	for _, rank := range taxonomy {
		if strings.TrimSpace(rank) == "" {
			return ErrTaxonomyIsIncomplete
		}
	}

	return nil
}
