package apperrors

// ErrorCode identifies an error class independent of its HTTP mapping.
type ErrorCode string

const (
	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Business/input errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Upload errors
	CodeNoFiles            ErrorCode = "NO_FILES"
	CodeFileTypeNotAllowed ErrorCode = "FILE_TYPE_NOT_ALLOWED"
	CodeSizeLimitExceeded  ErrorCode = "SIZE_LIMIT_EXCEEDED"
)
