package api

const (
	// DefaultFilePermissions for temp directory creation
	DefaultFilePermissions = 0755

	// MaxErrorMessageLength caps error messages returned to clients
	MaxErrorMessageLength = 200

	// ServiceName is reported by the health endpoint
	ServiceName = "pdf_splitter"
)
