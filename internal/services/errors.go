package services

import "errors"

var (
	ErrExtraction        = errors.New("text extraction failed")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAPI               = errors.New("analysis service error")
	ErrAuth              = errors.New("analysis service authentication failed")
	ErrParse             = errors.New("malformed analysis response")
)

// retryableError marks a failure worth another attempt: transport errors,
// timeouts, rate limiting and 5xx responses.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }

func (e *retryableError) Unwrap() error { return e.err }

func retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// IsRetryable reports whether err was marked as transient.
func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}
