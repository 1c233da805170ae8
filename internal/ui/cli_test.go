package ui

import (
	"testing"

	"github.com/moimlab/moim/internal/config"
)

func TestNewAppRegistersCommands(t *testing.T) {
	app := NewApp(nil, config.Default())

	want := map[string]bool{
		"version": false,
		"config":  false,
		"drafts":  false,
		"resume":  false,
		"export":  false,
		"themes":  false,
	}
	for _, cmd := range app.root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestAppCloseWithoutRepo(t *testing.T) {
	app := NewApp(nil, config.Default())
	if err := app.Close(); err != nil {
		t.Errorf("close without repo: %v", err)
	}
}
