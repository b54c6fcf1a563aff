package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"iacscan.dev/pkg/iacscan/internal/adapter"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// ErrorCode is the stable numeric code of a classified scan failure.
type ErrorCode int

// Error codes. Values are part of the report format and must not change.
const (
	FailedToInitLocalCacheError           ErrorCode = 1000
	FailedToCleanLocalCacheError          ErrorCode = 1001
	FailedToDownloadArtifactError         ErrorCode = 1002
	CurrentWorkingDirectoryTraversalError ErrorCode = 1010
	UnsupportedOptionCombinationError     ErrorCode = 1020
	InvalidFlagValueError                 ErrorCode = 1021
	ArtifactNotFoundError                 ErrorCode = 1060
	EngineInvocationError                 ErrorCode = 1061
	InvalidEngineOutputError              ErrorCode = 1062
	ScanCancelledError                    ErrorCode = 1090
	UnknownError                          ErrorCode = 1099
)

var errorCodeNames = map[ErrorCode]string{
	FailedToInitLocalCacheError:           "FailedToInitLocalCacheError",
	FailedToCleanLocalCacheError:          "FailedToCleanLocalCacheError",
	FailedToDownloadArtifactError:         "FailedToDownloadArtifactError",
	CurrentWorkingDirectoryTraversalError: "CurrentWorkingDirectoryTraversalError",
	UnsupportedOptionCombinationError:     "UnsupportedOptionCombinationError",
	InvalidFlagValueError:                 "InvalidFlagValueError",
	ArtifactNotFoundError:                 "ArtifactNotFoundError",
	EngineInvocationError:                 "EngineInvocationError",
	InvalidEngineOutputError:              "InvalidEngineOutputError",
	ScanCancelledError:                    "ScanCancelledError",
	UnknownError:                          "UnknownError",
}

// String returns the code's name.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// StrCode returns the code name in UPPER_SNAKE_CASE, e.g.
// CURRENT_WORKING_DIRECTORY_TRAVERSAL_ERROR.
func (c ErrorCode) StrCode() string {
	name := c.String()

	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

// ScanError is a classified failure with a stable code and a user-facing message.
type ScanError struct {
	Code        ErrorCode
	UserMessage string
	Err         error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}

	return e.UserMessage
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is matches any *ScanError with the same code, so the sentinels below work
// with errors.Is.
func (e *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// StrCode returns the UPPER_SNAKE_CASE form of the error code.
func (e *ScanError) StrCode() string {
	return e.Code.StrCode()
}

// Sentinels for errors.Is.
var (
	ErrArtifactNotFound                 = &ScanError{Code: ArtifactNotFoundError}
	ErrCurrentWorkingDirectoryTraversal = &ScanError{Code: CurrentWorkingDirectoryTraversalError}
	ErrUnsupportedOptionCombination     = &ScanError{Code: UnsupportedOptionCombinationError}
	ErrInvalidFlagValue                 = &ScanError{Code: InvalidFlagValueError}
	ErrEngineInvocation                 = &ScanError{Code: EngineInvocationError}
	ErrInvalidEngineOutput              = &ScanError{Code: InvalidEngineOutputError}
	ErrFailedToCleanLocalCache          = &ScanError{Code: FailedToCleanLocalCacheError}
	ErrFailedToDownloadArtifact         = &ScanError{Code: FailedToDownloadArtifactError}
	ErrFailedToInitLocalCache           = &ScanError{Code: FailedToInitLocalCacheError}
)

const traversalMessage = "Path is outside the current working directory"

func newTraversalError() *ScanError {
	return &ScanError{Code: CurrentWorkingDirectoryTraversalError, UserMessage: traversalMessage}
}

func newArtifactNotFoundError(kind string, err error) *ScanError {
	return &ScanError{
		Code:        ArtifactNotFoundError,
		UserMessage: fmt.Sprintf("Could not find a valid %s in the configured path", kind),
		Err:         err,
	}
}

func newUnsupportedOptionCombinationError(options ...string) *ScanError {
	return &ScanError{
		Code:        UnsupportedOptionCombinationError,
		UserMessage: fmt.Sprintf("The following option combination is not currently supported: %s", strings.Join(options, " + ")),
	}
}

func newInvalidFlagValueError(flag, value string, allowed []string) *ScanError {
	return &ScanError{
		Code:        InvalidFlagValueError,
		UserMessage: fmt.Sprintf("Unsupported value %q for flag --%s. Supported values are: %s", value, flag, strings.Join(allowed, ", ")),
	}
}

// Classify maps any error raised while scanning a path into a ScanError. It
// performs no I/O.
func Classify(err error) *ScanError {
	if err == nil {
		return nil
	}

	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return scanErr
	}

	var engineErr *adapter.EngineError
	if errors.As(err, &engineErr) {
		return &ScanError{Code: EngineInvocationError, UserMessage: engineErr.Error(), Err: err}
	}

	var outputErr *adapter.OutputError
	if errors.As(err, &outputErr) {
		return &ScanError{Code: InvalidEngineOutputError, UserMessage: "The policy engine returned an invalid report", Err: err}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &ScanError{Code: ScanCancelledError, UserMessage: "The scan was cancelled before this path completed", Err: err}
	}

	return &ScanError{Code: UnknownError, UserMessage: err.Error(), Err: err}
}

// ToResultError converts a classified error into its report representation.
func ToResultError(err *ScanError) *m.ResultError {
	if err == nil {
		return nil
	}

	return &m.ResultError{Code: int(err.Code), StrCode: err.StrCode(), Message: err.UserMessage}
}
