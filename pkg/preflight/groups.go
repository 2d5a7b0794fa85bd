package preflight

// groupDefinitions defines the check groups with their metadata.
var groupDefinitions = map[string]struct {
	Name        string
	Description string
	CheckIDs    []string
}{
	GroupRuntime: {
		Name:        "Python runtime",
		Description: "Interpreter and installer tooling the launcher depends on",
		CheckIDs:    []string{IDPython, IDPip, IDTkinter},
	},
	GroupGeospatial: {
		Name:        "Geospatial stack",
		Description: "Native libraries behind the GeoTIFF pipeline",
		CheckIDs:    []string{IDGDAL},
	},
	GroupApp: {
		Name:        "Application files",
		Description: "SolSense entry point and bundled assets",
		CheckIDs:    []string{IDEntryFile, IDResources},
	},
}

// groupOrder fixes the display order of groups.
var groupOrder = []string{GroupRuntime, GroupGeospatial, GroupApp}

// GetGroups returns all check groups without results.
func GetGroups() []CheckGroup {
	groups := make([]CheckGroup, 0, len(groupOrder))
	for _, groupID := range groupOrder {
		def := groupDefinitions[groupID]
		groups = append(groups, CheckGroup{
			ID:          groupID,
			Name:        def.Name,
			Description: def.Description,
		})
	}
	return groups
}

// GetGroupDefinition returns the definition for a specific group.
func GetGroupDefinition(groupID string) (struct {
	Name        string
	Description string
	CheckIDs    []string
}, bool) {
	def, ok := groupDefinitions[groupID]
	return def, ok
}
