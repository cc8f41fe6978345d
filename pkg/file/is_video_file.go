package file

import (
	"path/filepath"
	"slices"
	"strings"
)

var videoExtensions = []string{".mp4", ".mov", ".webm", ".avi", ".mkv"}

func IsVideoFile(filePath string) bool {
	return slices.Contains(videoExtensions, strings.ToLower(filepath.Ext(filePath)))
}
