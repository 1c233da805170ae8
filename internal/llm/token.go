package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// loadGitHubToken finds a GitHub OAuth token for the copilot provider
// without running a device flow of its own. GITHUB_TOKEN wins; otherwise
// the hosts.json and apps.json files left behind by a Copilot-enabled IDE
// are checked in order.
func loadGitHubToken() (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}

	for _, name := range []string{"hosts.json", "apps.json"} {
		token, err := oauthTokenFromFile(filepath.Join(dir, "github-copilot", name))
		if err == nil && token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("GitHub token not found: set GITHUB_TOKEN or authenticate with GitHub Copilot in your IDE")
}

// userConfigDir resolves the per-user config root, honoring XDG_CONFIG_HOME
// and the Windows local app data convention.
func userConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return local, nil
		}
		return filepath.Join(home, "AppData", "Local"), nil
	}

	return filepath.Join(home, ".config"), nil
}

// oauthTokenFromFile pulls the oauth_token out of a Copilot config file.
// Keys vary by IDE ("github.com", "github.com:user") so a substring match
// on the host is used.
func oauthTokenFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var entries map[string]map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", err
	}

	for key, entry := range entries {
		if !strings.Contains(key, "github.com") {
			continue
		}
		if token, ok := entry["oauth_token"].(string); ok {
			return token, nil
		}
	}

	return "", fmt.Errorf("oauth_token not found in %s", path)
}
