package inventory

// Log messages
const (
	LogMsgModifierApplied = "Modifier applied"
	LogMsgAllApplied      = "All modifiers applied"
)
