package modifier

// ==================== Format Strings ====================

const (
	// FmtFilter renders min level, rarity label and category label
	FmtFilter = "{level >= %d, rarity: %s, category: %s}"

	// FmtLabel renders identifier, magnitude and stat suffix.
	// The magnitude always uses six decimals.
	FmtLabel = "%s (+%f %s)"

	// FmtDescribe renders identifier, joined filters, effect label and magnitude
	FmtDescribe = "ident: %s, filters: %s, type: %s, value: %s"
)

// FiltersEmpty is rendered in place of the filter list when a modifier has none
const FiltersEmpty = "{}"
