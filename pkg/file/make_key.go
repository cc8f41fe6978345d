package file

import (
	"path/filepath"
	"strings"
)

// MakeKey builds the stored file name for an entity: the entity id followed
// by the lower-cased extension of the client supplied name, if any. Nothing
// else from the client name survives.
func MakeKey(id, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if !isSafeExt(ext) {
		ext = ""
	}
	return id + ext
}

func isSafeExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
