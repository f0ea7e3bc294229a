package sqlite

// MemoryPath opens a private in-memory database
const MemoryPath = "file::memory:"

// Error Messages
const (
	ErrMsgFailedToOpen      = "failed to open sqlite database"
	ErrMsgFailedToMigrate   = "failed to migrate sqlite schema"
	ErrMsgFailedToMarshal   = "failed to marshal plant column"
	ErrMsgFailedToUnmarshal = "failed to unmarshal plant column"
)
