package apperrors

// ErrorCode identifies the error kind across service boundaries.
type ErrorCode string

const (
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodeStorageError      ErrorCode = "STORAGE_ERROR"
	CodeNotificationError ErrorCode = "NOTIFICATION_ERROR"

	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"

	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
)
