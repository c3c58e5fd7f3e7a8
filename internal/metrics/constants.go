package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by this module
const Namespace = "gameitems"

// Modifier metric names
const (
	MetricNameModifierRuns         = "modifier_runs_total"
	MetricNameModifierApplications = "modifier_applications_total"
	MetricNameItemsModified        = "items_modified_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextModifierRuns         = "Total number of times a modifier was run against an inventory"
	HelpTextModifierApplications = "Total number of items a modifier was applied to"
	HelpTextItemsModified        = "Total number of modifier applications per item category"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelModifier = "modifier"
	LabelEffect   = "effect"
	LabelCategory = "category"
)
