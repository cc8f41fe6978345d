package constants

const (
	StatusOK = "OK"

	// UserIDHeader carries the caller's user id. It is trusted as-is.
	UserIDHeader = "x-uuid"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// Multipart field names accepted by the upload endpoints.
	FieldFile  = "file"
	FieldVideo = "video"
	FieldReel  = "reel"
)
