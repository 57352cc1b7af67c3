package toml

import "fmt"

const (
	currentSchemaVersion = 1
	slotsPerRow          = 9
	defaultRows          = 6
	defaultMaxAmount     = 64
)

type fileSchema struct {
	Version int         `toml:"version"`
	Guis    []guiSchema `toml:"guis"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	for i := range s.Guis {
		s.Guis[i].applyDefaults()
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalogue schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type guiSchema struct {
	Key    string        `toml:"key"`
	Title  string        `toml:"title,omitempty"`
	Rows   int           `toml:"rows,omitempty"`
	Slots  []slotSchema  `toml:"slots"`
	Groups []groupSchema `toml:"groups,omitempty"`
}

func (g *guiSchema) applyDefaults() {
	if g.Rows == 0 {
		g.Rows = defaultRows
	}
	if g.Title == "" {
		g.Title = g.Key
	}
	for i := range g.Slots {
		if g.Slots[i].MaxAmount == 0 {
			g.Slots[i].MaxAmount = defaultMaxAmount
		}
	}
}

type slotSchema struct {
	Slot           int     `toml:"slot"`
	Role           string  `toml:"role"`
	Item           string  `toml:"item,omitempty"`
	MaxAmount      int     `toml:"max_amount,omitempty"`
	ConsumeOnPlace bool    `toml:"consume_on_place,omitempty"`
	Cost           float64 `toml:"cost,omitempty"`
}

type groupSchema struct {
	Role  string `toml:"role"`
	Slots []int  `toml:"slots"`
}
