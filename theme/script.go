package theme

import (
	"fmt"
	"log/slog"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script is a starlark program that picks colors per theme. It runs with a
// single predeclared global, theme ("light" or "dark"), and may assign the
// string globals particle and/or accent.
type Script struct {
	Name string
	Src  string
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme script: %w", err)
	}
	return &Script{Name: path, Src: string(data)}, nil
}

// Colors executes the script for mode and returns whatever color strings it
// assigned. Non-string values are ignored.
func (s *Script) Colors(mode Mode) (particle, accent string, err error) {
	thread := &starlark.Thread{
		Name: s.Name,
		Print: func(_ *starlark.Thread, msg string) {
			slog.Debug("theme script", "script", s.Name, "msg", msg)
		},
	}
	predeclared := starlark.StringDict{
		"theme": starlark.String(mode),
	}

	opts := &syntax.FileOptions{TopLevelControl: true, GlobalReassign: true}
	globals, err := starlark.ExecFileOptions(opts, thread, s.Name, s.Src, predeclared)
	if err != nil {
		return "", "", fmt.Errorf("exec theme script %s: %w", s.Name, err)
	}

	return stringGlobal(globals, "particle"), stringGlobal(globals, "accent"), nil
}

func stringGlobal(globals starlark.StringDict, name string) string {
	if v, ok := globals[name].(starlark.String); ok {
		return string(v)
	}
	return ""
}
