package utils

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// CopyFile copies a file from src to dst
func CopyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, input, 0644)
}

// BackupFile copies path next to itself with a timestamp suffix and returns
// the backup location. A missing file is not an error and yields "".
func BackupFile(path string, now time.Time) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	backup := fmt.Sprintf("%s.%s.bak", path, now.Format("20060102150405"))
	if err := CopyFile(path, backup); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return backup, nil
}
