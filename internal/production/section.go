package production

// SectionConfig parametrizes the one generic entry pipeline. Every section
// screen used to be its own near-identical form; the differences that
// actually matter fit in this struct.
type SectionConfig struct {
	Key            string // URL key, also stored as section_name
	DisplayName    string
	TableName      string // physical production table
	ItemTable      string // which item master this section resolves against
	Policy         EfficiencyPolicy
	RequireRemarks bool
}

var sectionOrder = []string{"flattening", "spiral", "pvc", "pvccoating", "cutting"}

var sections = map[string]SectionConfig{
	"flattening": {
		Key:         "flattening",
		DisplayName: "Flattening Section",
		TableName:   "flatteningsection",
		ItemTable:   "items",
		Policy:      PerRowCappedEfficiency,
	},
	"spiral": {
		Key:         "spiral",
		DisplayName: "Spiral Section",
		TableName:   "spiralsection",
		ItemTable:   "spiralitem",
		Policy:      PerRowCappedEfficiency,
	},
	"pvc": {
		Key:         "pvc",
		DisplayName: "PVC Section",
		TableName:   "pvcsection",
		ItemTable:   "pvcitem",
		Policy:      BatchSharedEfficiency,
	},
	"pvccoating": {
		Key:            "pvccoating",
		DisplayName:    "PVC Coating Section",
		TableName:      "pvccoatingsection",
		ItemTable:      "pvcitem",
		Policy:         PerRowCappedEfficiency,
		RequireRemarks: true,
	},
	"cutting": {
		Key:         "cutting",
		DisplayName: "Cutting & Packing Section",
		TableName:   "cuttingsection",
		ItemTable:   "items",
		Policy:      PerRowCappedEfficiency,
	},
}

func SectionByKey(key string) (SectionConfig, bool) {
	cfg, ok := sections[key]
	return cfg, ok
}

// Sections returns all configs in a stable order.
func Sections() []SectionConfig {
	out := make([]SectionConfig, 0, len(sectionOrder))
	for _, k := range sectionOrder {
		out = append(out, sections[k])
	}
	return out
}
