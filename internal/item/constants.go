package item

// ==================== Describe Format Strings ====================

// FmtDescribeHeader renders identifier, kind label, level and rarity label
const FmtDescribeHeader = "ident: %s, type: %s, level: %d, rarity: %s, "

// Type-specific tails of a description. The last verb is the modifier label.
const (
	FmtDescribeWeapon = "damage: %s, speed: %s, modified: %s"
	FmtDescribeArmour = "protection: %s, modified: %s"
)
