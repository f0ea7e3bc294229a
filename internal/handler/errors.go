package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlantID        = "Missing plant id"
	ErrMsgBodyTooLarge          = "Request body too large"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError      = "Something went wrong"
	ErrMsgUnknownError            = "Unknown error"
	ErrMsgPlantNotFoundError      = "Plant not found"
	ErrMsgNothingSelectedError    = "Select at least one care category to apply"
	ErrMsgNoDraftError            = "No draft to apply. Build a draft first."
	ErrMsgNothingToUndoError      = "Nothing to undo"
	ErrMsgStaleSnapshotError      = "Plant changed since the last apply, undo is no longer possible"
	ErrMsgDraftMismatchError      = "Draft belongs to a different plant"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgServiceUnavailableError = "database connection failed"
)

// Success messages for API responses
const (
	MsgSessionDiscarded = "Session discarded"
)
