// Package config loads the optional league source configuration. The
// JSON schema is a flat mapping from league name to CSV file name, the
// same shape as shots.DefaultLeagueFiles, so a deployment can serve a
// different set of leagues without a rebuild.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// maxFileSize caps the config file read (the mapping is tiny; anything
// bigger is a mistake).
const maxFileSize = 1 * 1024 * 1024

// LoadLeagueFiles reads a league→file mapping from a JSON file. Keys
// are league names, values CSV file names relative to the data
// directory.
func LoadLeagueFiles(path string) (map[string]string, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("league config must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat league config: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("league config too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read league config: %w", err)
	}

	var files map[string]string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to parse league config: %w", err)
	}
	if err := validate(files); err != nil {
		return nil, fmt.Errorf("invalid league config: %w", err)
	}
	return files, nil
}

func validate(files map[string]string) error {
	if len(files) == 0 {
		return fmt.Errorf("no leagues configured")
	}
	for league, file := range files {
		if league == "" {
			return fmt.Errorf("empty league name")
		}
		if file == "" {
			return fmt.Errorf("league %q has no source file", league)
		}
		if filepath.IsAbs(file) || file != filepath.Base(file) {
			return fmt.Errorf("league %q source must be a bare file name, got %q", league, file)
		}
	}
	return nil
}
