package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept beside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting plant care service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// PostgresMaxConnIdleTime closes pooled connections idle longer than this
	PostgresMaxConnIdleTime = 5 * time.Minute

	// PostgresMaxConnLifetime recycles pooled connections after this long
	PostgresMaxConnLifetime = time.Hour
)

const (
	LogMsgStoreReady           = "Plant store ready"
	LogMsgMigrationsApplied    = "Database migrations applied"
	ErrMsgUnknownStoreDriver   = "unknown store driver"
	ErrMsgFailedOpenSQLite     = "failed to open sqlite store"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrateDB      = "failed to migrate database"
	ErrMsgFailedCloseStore     = "failed to close store"
	ErrMsgFailedGetSQLiteLayer = "failed to get sqlite connection"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStore         = "Closing plant store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
