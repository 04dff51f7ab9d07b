package errors

// ErrorCode identifies a failure class. Codes are stable strings so they can
// be matched in logs and quarantine records across releases.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// SourceRateLimited represents an upstream rate-limit rejection.
	SourceRateLimited ErrorCode = "source_rate_limited"
	// SourceUnavailable represents an unreachable or failing upstream source.
	SourceUnavailable ErrorCode = "source_unavailable"
	// SourceMalformedResponse represents an undecodable upstream payload.
	SourceMalformedResponse ErrorCode = "source_malformed_response"

	// StructuralValidationError represents a record that failed structural validation.
	StructuralValidationError ErrorCode = "structural_validation_error"
	// DuplicateRecordError represents a record whose unique key was already ingested.
	DuplicateRecordError ErrorCode = "duplicate_record_error"

	// StorageConnectionError represents a failure acquiring or using a storage connection.
	StorageConnectionError ErrorCode = "storage_connection_error"
	// StorageInsertError represents a failed insert after retries were exhausted.
	StorageInsertError ErrorCode = "storage_insert_error"
	// StorageQueryError represents a failed read from storage.
	StorageQueryError ErrorCode = "storage_query_error"

	// BaselineRecoveryError represents a failure loading baseline samples on startup.
	BaselineRecoveryError ErrorCode = "baseline_recovery_error"
	// AlertPublishError represents a failure publishing a severity alert.
	AlertPublishError ErrorCode = "alert_publish_error"
)
