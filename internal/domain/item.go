package domain

// Category is the kind of an item. Weapons are melee or ranged, armour is always CategoryArmour.
type Category string

const (
	CategoryNone   Category = "" // unconstrained in filters
	CategoryMelee  Category = "melee"
	CategoryRanged Category = "ranged"
	CategoryArmour Category = "armour"
)

// Rarity represents the quality tier of an item
type Rarity string

const (
	RarityNone   Rarity = "" // unconstrained in filters
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

var categoryLabels = map[Category]string{
	CategoryNone:   LabelNone,
	CategoryMelee:  "melee",
	CategoryRanged: "range",
	CategoryArmour: "armour",
}

var rarityLabels = map[Rarity]string{
	RarityNone:   LabelNone,
	RarityCommon: "common",
	RarityRare:   "rare",
	RarityEpic:   "epic!",
}

// Label returns the display label used in console output
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsValid reports whether c is a known category. CategoryNone is not valid on an item.
func (c Category) IsValid() bool {
	return c == CategoryMelee || c == CategoryRanged || c == CategoryArmour
}

// IsWeapon reports whether the category belongs to a weapon
func (c Category) IsWeapon() bool {
	return c == CategoryMelee || c == CategoryRanged
}

// Label returns the display label used in console output
func (r Rarity) Label() string {
	if label, ok := rarityLabels[r]; ok {
		return label
	}
	return string(r)
}

// IsValid reports whether r is a known rarity. RarityNone is not valid on an item.
func (r Rarity) IsValid() bool {
	return r == RarityCommon || r == RarityRare || r == RarityEpic
}
