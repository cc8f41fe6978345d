package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"reels-service/internal/domain/repositories"
	"reels-service/pkg/file"
)

var ErrInvalidLocator = errors.New("invalid locator")

// LocalStorage keeps every payload as a flat file in BasePath and hands out
// locators of the form <PublicPrefix>/<name>, which the HTTP layer serves
// statically.
type LocalStorage struct {
	BasePath     string
	PublicPrefix string
}

var _ repositories.ContentStore = (*LocalStorage)(nil)

func NewLocalStorage(basePath, publicPrefix string) *LocalStorage {
	return &LocalStorage{
		BasePath:     basePath,
		PublicPrefix: "/" + strings.Trim(publicPrefix, "/"),
	}
}

func (l *LocalStorage) Write(ctx context.Context, id, originalName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("storage write: empty id")
	}

	if err := os.MkdirAll(l.BasePath, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := file.MakeKey(id, originalName)
	finalPath := filepath.Join(l.BasePath, name)

	tmpFile, err := os.CreateTemp(l.BasePath, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("sync file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("chmod file: %w", err)
	}

	// Atomic rename; readers never see a partial file.
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("move file into place: %w", err)
	}

	return l.locator(name), nil
}

func (l *LocalStorage) Delete(ctx context.Context, locator string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath, err := l.Path(locator)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// Path resolves a locator to the file it names inside BasePath.
func (l *LocalStorage) Path(locator string) (string, error) {
	name, ok := strings.CutPrefix(locator, l.PublicPrefix+"/")
	if !ok || name == "" || name != path.Base(name) || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}
	return filepath.Join(l.BasePath, name), nil
}

func (l *LocalStorage) List(ctx context.Context) ([]repositories.StoredFile, error) {
	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	files := make([]repositories.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// temp files of in-flight writes start with a dot
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, repositories.StoredFile{
			Name:    entry.Name(),
			Locator: l.locator(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

func (l *LocalStorage) locator(name string) string {
	return l.PublicPrefix + "/" + name
}
