package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int      `toml:"version"`
	Name    string   `toml:"name,omitempty"`
	Symbols []string `toml:"symbols"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported palette schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
