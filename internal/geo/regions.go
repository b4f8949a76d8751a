package geo

// Fill colors used by the choropleth renderer. Each macro-region has a fixed
// display color; states outside the occurrence set are painted neutral gray.
const (
	// DefaultOccurrenceColor is used for an occurring state whose
	// macro-region could not be determined.
	DefaultOccurrenceColor = "#008080"

	// AbsentColor is used for states where the species does not occur.
	AbsentColor = "#D3D3D3"

	// BorderColor is the stroke color of state boundaries.
	BorderColor = "#5A5A5A"
)

// MacroRegion is one of Brazil's five fixed geopolitical groupings of
// states. Names and member-state lists are stored in normalized token form
// (see [NormalizeToken]).
type MacroRegion struct {
	Name   string
	States []string
	Color  string
}

// macroRegions is the closed table of Brazil's macro-regions, keyed by
// normalized region name. Loaded once at package init and never mutated.
var macroRegions = map[string]MacroRegion{
	"NORTE": {
		Name:  "NORTE",
		Color: "#2E8B57",
		States: []string{
			"ACRE", "AMAPA", "AMAZONAS", "PARA", "RONDONIA", "RORAIMA", "TOCANTINS",
		},
	},
	"NORDESTE": {
		Name:  "NORDESTE",
		Color: "#FF8C00",
		States: []string{
			"ALAGOAS", "BAHIA", "CEARA", "MARANHAO", "PARAIBA",
			"PERNAMBUCO", "PIAUI", "RIO GRANDE DO NORTE", "SERGIPE",
		},
	},
	"CENTRO-OESTE": {
		Name:  "CENTRO-OESTE",
		Color: "#DAA520",
		States: []string{
			"DISTRITO FEDERAL", "GOIAS", "MATO GROSSO", "MATO GROSSO DO SUL",
		},
	},
	"SUDESTE": {
		Name:  "SUDESTE",
		Color: "#CD5C5C",
		States: []string{
			"ESPIRITO SANTO", "MINAS GERAIS", "RIO DE JANEIRO", "SAO PAULO",
		},
	},
	"SUL": {
		Name:  "SUL",
		Color: "#4682B4",
		States: []string{
			"PARANA", "RIO GRANDE DO SUL", "SANTA CATARINA",
		},
	},
}

// stateRegion maps every normalized state name to its macro-region.
// Built once from macroRegions at init.
var stateRegion = func() map[string]MacroRegion {
	index := make(map[string]MacroRegion)
	for _, region := range macroRegions {
		for _, state := range region.States {
			index[state] = region
		}
	}
	return index
}()

// LookupRegion resolves a normalized token as a macro-region name.
// "CENTRO OESTE" is accepted as a spelling of "CENTRO-OESTE".
func LookupRegion(token string) (MacroRegion, bool) {
	if token == "CENTRO OESTE" {
		token = "CENTRO-OESTE"
	}

	region, ok := macroRegions[token]
	return region, ok
}

// ResolveOccurrences parses a free-text region/state descriptor into the set
// of occurring states with their fill colors, keyed by normalized state
// name.
//
// Each token resolves in two tiers: a recognized macro-region name adds all
// its member states in the region's color; any other token is treated as a
// literal state name, colored by its region when known and by
// [DefaultOccurrenceColor] otherwise. No further guessing is attempted.
func ResolveOccurrences(descriptor string) map[string]string {
	occurrences := make(map[string]string)

	for _, raw := range SplitTokens(descriptor) {
		token := NormalizeToken(raw)

		if region, ok := LookupRegion(token); ok {
			for _, state := range region.States {
				occurrences[state] = region.Color
			}
			continue
		}

		// Not a macro-region: take the token as a state name as-is.
		if region, ok := stateRegion[token]; ok {
			occurrences[token] = region.Color
		} else {
			occurrences[token] = DefaultOccurrenceColor
		}
	}

	return occurrences
}
