package policy

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"jobcast/internal/core/domain"
)

// File is the on-disk policy document:
//
//	channels:
//	  jooble:
//	    enforce_budget_limits: false
//	    auto_actions: true
type File struct {
	Channels map[string]domain.PolicySpec `yaml:"channels"`
}

// Load decodes a policy document and registers every channel it names.
func Load(r io.Reader, reg *Registry) error {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("decode policy file: %w", err)
	}
	for id, spec := range f.Channels {
		if id == "" {
			return fmt.Errorf("policy file: empty channel id")
		}
		reg.Register(id, spec)
	}
	return nil
}

// LoadFile opens path and loads it into reg. An empty path is a no-op.
func LoadFile(path string, reg *Registry) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open policy file: %w", err)
	}
	defer f.Close()
	return Load(f, reg)
}
