// Package input provides helpers for the form's prompt line.
package input

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

// MatchingCommands returns commands that match the current input prefix.
func MatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Autocomplete returns the first matching command and whether it exists.
func Autocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := MatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// CompletePath extends a partially typed filesystem path to the first
// directory entry matching it, for the image picker prompt. Directories
// gain a trailing separator so completion can continue into them.
func CompletePath(input string) (string, bool) {
	if input == "" {
		return "", false
	}

	dir, base := filepath.Split(input)
	searchDir := dir
	if searchDir == "" {
		searchDir = "."
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return "", false
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), base) {
			name := e.Name()
			if e.IsDir() {
				name += string(filepath.Separator)
			}
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return dir + names[0], true
}
