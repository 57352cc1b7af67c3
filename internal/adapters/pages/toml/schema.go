package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Current int          `toml:"current"`
	Pages   []pageSchema `toml:"pages"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported pages schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type pageSchema struct {
	Index int          `toml:"index"`
	Items []itemSchema `toml:"items"`
}

type itemSchema struct {
	Slot     int    `toml:"slot"`
	Material string `toml:"material"`
	Tag      string `toml:"tag,omitempty"`
	Name     string `toml:"name,omitempty"`
	Amount   int    `toml:"amount"`
}
