package splitter

import "errors"

// Run failures. Every error returned by Run wraps exactly one of these.
var (
	ErrInputNotFound         = errors.New("input file not found")
	ErrInputNotAFile         = errors.New("input path is not a file")
	ErrOutputDirCreateFailed = errors.New("failed to create output directory")
	ErrInvalidDocument       = errors.New("failed to parse PDF file, is it a valid PDF?")
	ErrInvalidPageLimit      = errors.New("page limit must be at least 1")
	ErrPageDeletionFailed    = errors.New("failed to delete pages")
	ErrOutputWriteFailed     = errors.New("failed to write output file")
	ErrVerifyFailed          = errors.New("output verification failed")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInputNotFound, "input_not_found"},
	{ErrInputNotAFile, "input_not_a_file"},
	{ErrOutputDirCreateFailed, "output_dir_create_failed"},
	{ErrInvalidDocument, "invalid_document"},
	{ErrInvalidPageLimit, "invalid_page_limit"},
	{ErrPageDeletionFailed, "page_deletion_failed"},
	{ErrOutputWriteFailed, "output_write_failed"},
	{ErrVerifyFailed, "verify_failed"},
}

// Code classifies err into a stable identifier for logs and API responses.
// Errors outside the run taxonomy map to "unknown".
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "unknown"
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the environment.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDocument) ||
		errors.Is(err, ErrInvalidPageLimit) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrInputNotAFile)
}
