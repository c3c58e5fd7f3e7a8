package item

import (
	"fmt"

	"github.com/osse101/gameitems/internal/domain"
)

// WeaponParams carries the values needed to construct a Weapon
type WeaponParams struct {
	ID       string          `validate:"required"`
	Category domain.Category `validate:"required,weapon_category"`
	Level    int             `validate:"gte=0"`
	Rarity   domain.Rarity   `validate:"required,rarity"`
	Damage   float64
	Speed    float64
}

// Weapon is a melee or ranged item with damage and attack speed
type Weapon struct {
	base

	damage float64
	speed  float64
}

// NewWeapon validates params and returns a new weapon with no modifiers applied
func NewWeapon(params WeaponParams) (*Weapon, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	return &Weapon{
		base:   newBase(params.ID, params.Category, params.Level, params.Rarity),
		damage: params.Damage,
		speed:  params.Speed,
	}, nil
}

// Damage returns the current damage including applied modifiers
func (w *Weapon) Damage() float64 { return w.damage }

// Speed returns the current attack speed including applied modifiers
func (w *Weapon) Speed() float64 { return w.speed }

func (w *Weapon) ApplyDamage(delta float64) { w.damage += delta }
func (w *Weapon) ApplySpeed(delta float64) { w.speed += delta }
func (w *Weapon) ApplyProtection(float64) {}

// Describe renders the weapon as a single console line
func (w *Weapon) Describe() string {
	return w.header(domain.LabelWeapon) +
		fmt.Sprintf(FmtDescribeWeapon, FormatStat(w.damage), FormatStat(w.speed), w.label)
}
