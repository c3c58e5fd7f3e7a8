package modifier

// List is an ordered, append-only collection of modifiers
type List struct {
	mods []*Modifier
}

// NewList creates an empty modifier list
func NewList() *List {
	return &List{}
}

// Add appends m to the end of the list
func (l *List) Add(m *Modifier) {
	l.mods = append(l.mods, m)
}

// All returns the modifiers in insertion order. The slice is a copy; the modifiers are not.
func (l *List) All() []*Modifier {
	out := make([]*Modifier, len(l.mods))
	copy(out, l.mods)
	return out
}

// Len returns the number of modifiers in the list
func (l *List) Len() int {
	return len(l.mods)
}

// Describe returns one description line per modifier
func (l *List) Describe() []string {
	lines := make([]string, 0, len(l.mods))
	for _, m := range l.mods {
		lines = append(lines, m.Describe())
	}
	return lines
}
