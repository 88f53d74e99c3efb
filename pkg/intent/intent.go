package intent

// Intent is the search intent taxonomy used throughout the engine.
type Intent string

const (
	Informational Intent = "informational"
	Commercial    Intent = "commercial"
	Transactional Intent = "transactional"
	Navigational  Intent = "navigational"
)

// Valid reports whether s is one of the four taxonomy labels.
func Valid(s string) bool {
	switch Intent(s) {
	case Informational, Commercial, Transactional, Navigational:
		return true
	}
	return false
}

// All returns the taxonomy in display order.
func All() []Intent {
	return []Intent{Informational, Commercial, Transactional, Navigational}
}
