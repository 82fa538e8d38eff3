package domain

// Column describes one persisted attribute. Type is the generic SQL type
// name; dialects may store it under a different affinity.
type Column struct {
	Name       string
	Type       string
	Size       int
	PrimaryKey bool
}

// Table is a storage-agnostic description of a record's persisted shape.
type Table struct {
	Name    string
	Columns []Column
}

// PrimaryKey returns the names of the key columns in declaration order.
func (t Table) PrimaryKey() []string {
	var key []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			key = append(key, c.Name)
		}
	}
	return key
}

// Missing returns the declared columns absent from present, in declaration order.
func (t Table) Missing(present []string) []string {
	have := make(map[string]bool, len(present))
	for _, p := range present {
		have[p] = true
	}

	var missing []string
	for _, c := range t.Columns {
		if !have[c.Name] {
			missing = append(missing, c.Name)
		}
	}
	return missing
}
