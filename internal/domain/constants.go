package domain

// Display labels
const (
	LabelNone   = "<NONE>"
	LabelWeapon = "weapon"
	LabelArmour = "armour"
)

// DefaultModifierLabel is the label of an item no modifier has touched yet
const DefaultModifierLabel = "no modifiers"
