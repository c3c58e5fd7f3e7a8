package item

import (
	"fmt"
	"strconv"

	"github.com/osse101/gameitems/internal/domain"
	"github.com/osse101/gameitems/internal/validation"
)

// Item is a game item whose combat stats can be changed by modifiers.
//
// Every implementation accepts all three Apply calls and ignores the ones
// that do not fit its kind, so callers can broadcast a modifier without
// switching on the concrete type.
type Item interface {
	ID() string
	Category() domain.Category
	Rarity() domain.Rarity
	Level() int

	ModifierLabel() string
	SetModifierLabel(label string)

	ApplyDamage(delta float64)
	ApplySpeed(delta float64)
	ApplyProtection(delta float64)

	Describe() string
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock() {}
func (*noCopy) Unlock() {}

// base holds the identity fields shared by weapons and armour
type base struct {
	noCopy noCopy

	id       string
	category domain.Category
	level    int
	rarity   domain.Rarity
	label    string
}

func newBase(id string, category domain.Category, level int, rarity domain.Rarity) base {
	return base{
		id:       id,
		category: category,
		level:    level,
		rarity:   rarity,
		label:    domain.DefaultModifierLabel,
	}
}

func (b *base) ID() string { return b.id }
func (b *base) Category() domain.Category { return b.category }
func (b *base) Rarity() domain.Rarity { return b.rarity }
func (b *base) Level() int { return b.level }
func (b *base) ModifierLabel() string { return b.label }
func (b *base) SetModifierLabel(text string) { b.label = text }

// header renders the fields common to every item description
func (b *base) header(kind string) string {
	return fmt.Sprintf(FmtDescribeHeader, b.id, kind, b.level, b.rarity.Label())
}

// FormatStat renders a stat with six significant digits and no trailing zeros,
// so 12.0 prints as "12" and 93.1 as "93.1".
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func validate(params interface{}) error {
	if err := validation.Struct(params); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidItem, err)
	}
	return nil
}
