package modifier

import (
	"fmt"
	"strings"

	"github.com/osse101/gameitems/internal/domain"
	"github.com/osse101/gameitems/internal/item"
	"github.com/osse101/gameitems/internal/validation"
)

// Params carries the values needed to construct a Modifier
type Params struct {
	ID        string            `validate:"required"`
	Effect    domain.EffectKind `validate:"required,effect"`
	Magnitude float64
}

// Modifier is a named buff that adds Magnitude to one stat of every item
// matching at least one of its filters.
type Modifier struct {
	id        string
	effect    domain.EffectKind
	magnitude float64
	filters   []Filter
}

// New validates params and returns a modifier without filters.
// A modifier without filters matches nothing; add at least one with AddFilter.
func New(params Params) (*Modifier, error) {
	if err := validation.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidModifier, err)
	}

	return &Modifier{
		id:        params.ID,
		effect:    params.Effect,
		magnitude: params.Magnitude,
	}, nil
}

func (m *Modifier) ID() string { return m.id }
func (m *Modifier) Effect() domain.EffectKind { return m.effect }
func (m *Modifier) Magnitude() float64 { return m.magnitude }

// Filters returns a copy of the modifier's filters in insertion order
func (m *Modifier) Filters() []Filter {
	out := make([]Filter, len(m.filters))
	copy(out, m.filters)
	return out
}

// AddFilter appends f. The filter is stored by value and cannot be changed afterwards.
func (m *Modifier) AddFilter(f Filter) error {
	if err := validation.Struct(f); err != nil {
		return fmt.Errorf("%w: modifier '%s': %s", domain.ErrInvalidFilter, m.id, err)
	}
	m.filters = append(m.filters, f)
	return nil
}

// CheckFilters reports whether it satisfies at least one filter.
// Filters are OR-ed, not AND-ed; a modifier without filters never matches.
func (m *Modifier) CheckFilters(it item.Item) bool {
	matched := false
	for _, f := range m.filters {
		if f.Matches(it) {
			matched = true
		}
	}
	return matched
}

// Label is the text written into a matching item's modifier label,
// e.g. "eagle_eye (+10.000000 DMG)".
func (m *Modifier) Label() string {
	return fmt.Sprintf(FmtLabel, m.id, m.magnitude, m.effect.Suffix())
}

// Describe renders the modifier as a single console line
func (m *Modifier) Describe() string {
	filters := FiltersEmpty
	if len(m.filters) > 0 {
		parts := make([]string, len(m.filters))
		for i, f := range m.filters {
			parts[i] = f.String()
		}
		filters = strings.Join(parts, ", ")
	}
	return fmt.Sprintf(FmtDescribe, m.id, filters, m.effect.Label(), item.FormatStat(m.magnitude))
}
