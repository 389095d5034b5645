package model

// Lookup maps entity IDs (categories, cost centers, vendors, clients) to
// display names. The engine never queries by id; callers pass pre-built
// lookups and the engine only resolves names from them.
type Lookup map[string]string

// Name resolves an id, falling back to the id itself when unknown so report
// rows never render blank.
func (l Lookup) Name(id string) string {
	if l == nil {
		return id
	}
	if name, ok := l[id]; ok && name != "" {
		return name
	}
	return id
}
