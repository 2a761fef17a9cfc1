// Package fileutils provides the file checks used by the commands.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadInput reads a whole input file, rejecting missing paths and directories.
func ReadInput(filePath string) ([]byte, error) {
	if filePath == "" {
		return nil, fmt.Errorf("no input file given")
	}
	if !FileExists(filePath) {
		return nil, fmt.Errorf("input file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// ResolveOutputPath decides where an export goes. An empty output uses
// defaultName in the working directory; an existing directory receives
// defaultName inside it. Parent directories are created as needed.
func ResolveOutputPath(output, defaultName string) (string, error) {
	switch {
	case output == "":
		return defaultName, nil
	case DirectoryExists(output):
		return filepath.Join(output, defaultName), nil
	}

	if err := EnsureDirectoryExists(filepath.Dir(output)); err != nil {
		return "", err
	}
	return output, nil
}

// WriteFile writes data to a file, creating any parent directories if needed
func WriteFile(filePath string, data []byte) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
