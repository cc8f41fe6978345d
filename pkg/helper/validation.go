package helper

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	consts "reels-service/pkg/constants"
	"reels-service/pkg/errors"

	"github.com/google/uuid"
)

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	case ".avi":
		return "video/avi"
	case ".mkv":
		return "video/mkv"
	default:
		return "application/octet-stream"
	}
}

// ParsePagination turns raw page/limit query values into a page number and a
// page size. Missing, unparsable and non-positive values fall back to the
// defaults; limit is capped at MaxLimit. Page is capped so that its offset
// still fits in an int.
func ParsePagination(pageRaw, limitRaw string) (page, limit int) {
	page = parsePositive(pageRaw, consts.DefaultPage)
	limit = parsePositive(limitRaw, consts.DefaultLimit)
	if limit > consts.MaxLimit {
		limit = consts.MaxLimit
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return page, limit
}

// Offset returns the row offset of the given page, saturating at math.MaxInt.
func Offset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func parsePositive(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	// Atoi saturates positive overflow at math.MaxInt.
	if (err != nil && v != math.MaxInt) || v < 1 {
		return fallback
	}
	return v
}

// ParseUserID validates the x-uuid header value.
func ParseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errors.ErrBadRequest("missing %s header", consts.UserIDHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.ErrBadRequest("malformed %s header", consts.UserIDHeader)
	}
	return id, nil
}

// ParseID validates a path identifier.
func ParseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errors.ErrBadRequest("malformed %s id %q", kind, raw)
	}
	return id, nil
}
