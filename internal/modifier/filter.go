package modifier

import (
	"fmt"

	"github.com/osse101/gameitems/internal/domain"
	"github.com/osse101/gameitems/internal/item"
)

// Filter selects the items a modifier may affect.
// Zero values leave a field unconstrained.
type Filter struct {
	MinLevel int             `validate:"gte=0"`
	Rarity   domain.Rarity   `validate:"rarity"`
	Category domain.Category `validate:"category"`
}

// Matches reports whether it satisfies every constraint of the filter
func (f Filter) Matches(it item.Item) bool {
	if it.Level() < f.MinLevel {
		return false
	}
	if f.Rarity != domain.RarityNone && it.Rarity() != f.Rarity {
		return false
	}
	if f.Category != domain.CategoryNone && it.Category() != f.Category {
		return false
	}
	return true
}

// String renders the filter as "{level >= N, rarity: R, category: C}"
func (f Filter) String() string {
	return fmt.Sprintf(FmtFilter, f.MinLevel, f.Rarity.Label(), f.Category.Label())
}
