// Package catalog loads and validates named pattern libraries: YAML
// documents that bind names to Definition trees, the caller-facing
// vocabulary on top of the expr/automaton core.
package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fhur/regie/expr"
)

//go:embed default.yaml
var defaultLibraryYaml []byte

// Library is a named set of pattern definitions, as loaded from a YAML
// document of the form:
//
//	patterns:
//	  greeting:
//	    kind: cat
//	    children:
//	      - {kind: lit, value: "hello"}
//	      - {kind: lit, value: "world"}
type Library struct {
	Patterns map[string]Definition `yaml:"patterns"`
}

// Build looks up name in the library and lowers its Definition into an
// expr.Expr.
func (l Library) Build(name string) (expr.Expr, error) {
	def, ok := l.Patterns[name]
	if !ok {
		return nil, errors.Errorf("catalog: no pattern named %q", name)
	}
	e, err := def.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "pattern %q", name)
	}
	return e, nil
}

// Validate checks that every definition in the library lowers successfully,
// reporting the first failure by pattern name.
func (l Library) Validate() error {
	for name, def := range l.Patterns {
		if _, err := def.Build(); err != nil {
			return errors.Wrapf(err, "validation error in pattern %q", name)
		}
	}
	return nil
}

// ConfigPath returns the path to the user's pattern library file.
func ConfigPath() (string, error) {
	path := filepath.Join("regie", "patterns.yaml")
	return xdg.ConfigFile(path)
}

// LoadOrCreate loads the library at path, creating it from the embedded
// default set if it does not yet exist.
func LoadOrCreate(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("writing default pattern library to %q\n", path)
		if err := saveDefaultLibrary(path); err != nil {
			return Library{}, fmt.Errorf("writing default library to %q: %w", path, err)
		}
		return unmarshalLibrary(defaultLibraryYaml)
	} else if err != nil {
		return Library{}, fmt.Errorf("reading library from %q: %w", path, err)
	}

	lib, err := unmarshalLibrary(data)
	if err != nil {
		return Library{}, err
	}
	if err := lib.Validate(); err != nil {
		return Library{}, fmt.Errorf("invalid pattern library at %q: %w", path, err)
	}
	return lib, nil
}

func unmarshalLibrary(data []byte) (Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	return lib, nil
}

func saveDefaultLibrary(path string) error {
	dirPath := filepath.Dir(path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}
	if err := os.WriteFile(path, defaultLibraryYaml, 0644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	return nil
}
