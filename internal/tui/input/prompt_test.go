package input

import (
	"os"
	"path/filepath"
	"testing"
)

var testCommands = []PromptCommand{
	{Name: "/save", Description: "draft save"},
	{Name: "/submit", Description: "submit listing"},
	{Name: "/quit", Description: "leave"},
}

func TestMatchingCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "slash prefix matches all", input: "/", want: 3},
		{name: "shared prefix", input: "/s", want: 2},
		{name: "exact", input: "/quit", want: 1},
		{name: "case insensitive", input: "/SA", want: 1},
		{name: "no slash", input: "save", want: 0},
		{name: "argument already typed", input: "/save now", want: 0},
		{name: "unknown", input: "/zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchingCommands(tt.input, testCommands)
			if len(got) != tt.want {
				t.Errorf("got %d matches, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAutocomplete(t *testing.T) {
	got, ok := Autocomplete("/sa", testCommands)
	if !ok || got != "/save " {
		t.Errorf("got %q/%v, want %q", got, ok, "/save ")
	}

	if _, ok := Autocomplete("/zzz", testCommands); ok {
		t.Error("unknown prefix should not complete")
	}
}

func TestCompletePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "photos"), 0o755); err != nil {
		t.Fatal(err)
	}

	sep := string(filepath.Separator)

	got, ok := CompletePath(dir + sep + "cov")
	if !ok || got != filepath.Join(dir, "cover.jpg") {
		t.Errorf("got %q/%v, want cover.jpg path", got, ok)
	}

	// Directories complete with a trailing separator.
	got, ok = CompletePath(dir + sep + "ph")
	if !ok || got != filepath.Join(dir, "photos")+sep {
		t.Errorf("got %q/%v, want photos%s", got, ok, sep)
	}

	if _, ok := CompletePath(dir + sep + "nothing"); ok {
		t.Error("no match should report false")
	}
	if _, ok := CompletePath(""); ok {
		t.Error("empty input should report false")
	}
}
