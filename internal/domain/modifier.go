package domain

// EffectKind selects which stat a modifier changes
type EffectKind string

const (
	EffectDamageBuff     EffectKind = "DamageBuff"
	EffectProtectionBuff EffectKind = "ProtectionBuff"
	EffectSpeedBuff      EffectKind = "SpeedBuff"
)

// effectSuffixes holds the stat abbreviation written into an item's modifier label
var effectSuffixes = map[EffectKind]string{
	EffectDamageBuff:     "DMG",
	EffectProtectionBuff: "PROTECTION",
	EffectSpeedBuff:      "SPEED",
}

// IsValid reports whether k is a known effect kind
func (k EffectKind) IsValid() bool {
	_, ok := effectSuffixes[k]
	return ok
}

// Label returns the display label used in console output
func (k EffectKind) Label() string {
	if k == "" {
		return LabelNone
	}
	return string(k)
}

// Suffix returns the stat abbreviation for modifier labels, e.g. "DMG"
func (k EffectKind) Suffix() string {
	return effectSuffixes[k]
}
