package finder

import (
	"fmt"
	"os"
	"path/filepath"
)

// SearchDirs are tried in order when the configured path does not exist
var SearchDirs = []string{".", "conf", "/etc/merlinsfork_api"}

// FindConfigFile looks for a configuration file in the given path and returns the absolute path.
// When the path does not exist its base name is looked up in SearchDirs.
func FindConfigFile(configPath string, mustExist bool) (string, error) {
	candidates := []string{configPath}
	if !filepath.IsAbs(configPath) {
		for _, dir := range SearchDirs {
			candidates = append(candidates, filepath.Join(dir, filepath.Base(configPath)))
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		absPath, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		return absPath, nil
	}

	if mustExist {
		return "", fmt.Errorf("configuration file not found: %s", configPath)
	}
	return configPath, nil
}
