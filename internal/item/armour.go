package item

import (
	"fmt"

	"github.com/osse101/gameitems/internal/domain"
)

// ArmourParams carries the values needed to construct an Armour piece.
// The category is always domain.CategoryArmour.
type ArmourParams struct {
	ID         string        `validate:"required"`
	Level      int           `validate:"gte=0"`
	Rarity     domain.Rarity `validate:"required,rarity"`
	Protection float64
}

// Armour is a wearable item with a protection value
type Armour struct {
	base

	protection float64
}

// NewArmour validates params and returns a new armour piece with no modifiers applied
func NewArmour(params ArmourParams) (*Armour, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	return &Armour{
		base:       newBase(params.ID, domain.CategoryArmour, params.Level, params.Rarity),
		protection: params.Protection,
	}, nil
}

// Protection returns the current protection including applied modifiers
func (a *Armour) Protection() float64 { return a.protection }

func (a *Armour) ApplyDamage(float64) {}
func (a *Armour) ApplySpeed(float64) {}
func (a *Armour) ApplyProtection(delta float64) { a.protection += delta }

// Describe renders the armour as a single console line
func (a *Armour) Describe() string {
	return a.header(domain.LabelArmour) +
		fmt.Sprintf(FmtDescribeArmour, FormatStat(a.protection), a.label)
}
