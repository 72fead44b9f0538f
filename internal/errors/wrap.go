package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
//
// The wrapped error preserves the original error chain, so sentinel
// checks keep working:
//
//	if _, err := encoding.Decode(s); err != nil {
//	    return errors.Wrap(err, "decoding signature")
//	}
//
//	if errors.Is(err, errors.ErrInvalidEncoding) {
//	    // Handle malformed input
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Join wraps cause with a sentinel so both satisfy errors.Is.
// It is used where a lower-level failure (a provider error, a context
// cancellation) must surface as one of this package's error kinds.
func Join(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
