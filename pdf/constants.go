package pdf

import "os"

const (
	// DefaultFilePermissions for files written by Save
	DefaultFilePermissions os.FileMode = 0644

	// Extension of every output part
	Extension = ".pdf"
)
