package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Rate quote codes.
	InvalidSortKey failure.ErrorCode = "InvalidSortKey"

	// Feed ingest codes.
	SourceNotFound  failure.ErrorCode = "SourceNotFound"
	FeedUnavailable failure.ErrorCode = "FeedUnavailable"
	FeedMalformed   failure.ErrorCode = "FeedMalformed"
	RunLogNotFound  failure.ErrorCode = "RunLogNotFound"
)
