package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Plant errors
	ErrMsgPlantNotFound = "plant not found"

	// Apply/undo errors
	ErrMsgNothingSelected       = "no care categories selected"
	ErrMsgNoDraft               = "no draft has been built for this plant"
	ErrMsgNothingToUndo         = "nothing to undo"
	ErrMsgDraftPlantMismatch    = "draft belongs to a different plant"
	ErrMsgSnapshotPlantMismatch = "undo snapshot belongs to a different plant"
	ErrMsgSnapshotMismatch      = "undo snapshot is no longer current"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlantNotFound = errors.New(ErrMsgPlantNotFound)

	ErrNothingSelected       = errors.New(ErrMsgNothingSelected)
	ErrNoDraft               = errors.New(ErrMsgNoDraft)
	ErrNothingToUndo         = errors.New(ErrMsgNothingToUndo)
	ErrDraftPlantMismatch    = errors.New(ErrMsgDraftPlantMismatch)
	ErrSnapshotPlantMismatch = errors.New(ErrMsgSnapshotPlantMismatch)
	ErrSnapshotMismatch      = errors.New(ErrMsgSnapshotMismatch)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
