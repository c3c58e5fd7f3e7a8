package catalog

// ==================== Schema ====================

// SchemaName is the name the embedded catalog schema is registered under
const SchemaName = "catalog.schema.json"

// ==================== Error Messages ====================

const (
	ErrMsgSchemaRegisterFailed = "failed to register catalog schema: %w"
	ErrMsgSchemaFailed         = "%w: %v"
	ErrMsgParseFailed          = "failed to parse catalog: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty     = "%w: item at index %d has empty id"
	ErrFmtModifierAtIndexEmpty = "%w: modifier at index %d has empty id"
	ErrFmtBuildItem            = "%w: item '%s': %w"
	ErrFmtBuildModifier        = "%w: modifier '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgDuplicateItem     = "Duplicate item id in catalog"
	LogMsgDuplicateModifier = "Duplicate modifier id in catalog"
	LogMsgEmptyFilters      = "Modifier has no filters and will never apply"
	LogMsgCatalogBuilt      = "Catalog built"
)
