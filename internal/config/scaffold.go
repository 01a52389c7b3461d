package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// NamesFileName is the names file created by ScaffoldProject.
const NamesFileName = "names.txt"

// ScaffoldProject creates wheel.toml and names.txt in the given directory
// and makes sure the history directory is git-ignored. Files that already
// exist are left untouched. Returns the list of created paths.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	// wheel.toml
	tomlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	// names.txt
	namesPath := filepath.Join(dir, NamesFileName)
	if _, err := os.Stat(namesPath); os.IsNotExist(err) {
		content := wheel.Join(wheel.DefaultNames) + "\n"
		if writeErr := os.WriteFile(namesPath, []byte(content), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", namesPath, writeErr)
		}
		created = append(created, namesPath)
	}

	// .gitignore: keep spin history out of version control
	const gitignoreEntry = ".wheel/"
	gitignorePath := filepath.Join(dir, ".gitignore")
	existing, err := os.ReadFile(gitignorePath)
	if os.IsNotExist(err) {
		if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreEntry+"\n"), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	} else if err != nil {
		return created, fmt.Errorf("scaffold: read %s: %w", gitignorePath, err)
	} else if !strings.Contains(string(existing), gitignoreEntry) {
		content := string(existing)
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content += "\n"
		}
		content += gitignoreEntry + "\n"
		if writeErr := os.WriteFile(gitignorePath, []byte(content), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	}

	return created, nil
}
