package toml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Slot is one configured slot of a GUI.
type Slot struct {
	Index          int
	Role           domain.RoleTag
	Item           domain.ItemIdentity
	MaxAmount      int
	ConsumeOnPlace bool
	Cost           float64
}

type Gui struct {
	Key    domain.GuiKey
	Title  string
	Rows   int
	Slots  map[int]Slot
	Groups map[domain.RoleTag][]int
}

func (g Gui) Size() int {
	return g.Rows * slotsPerRow
}

// SortedSlots returns the configured slots in ascending order.
func (g Gui) SortedSlots() []Slot {
	out := make([]Slot, 0, len(g.Slots))
	for _, slot := range g.Slots {
		out = append(out, slot)
	}
	slices.SortFunc(out, func(a, b Slot) int { return a.Index - b.Index })
	return out
}

// Catalogue serves slot rules from a guis.toml file and tracks which open container shows which
// GUI.
type Catalogue struct {
	path string
	log  logrus.FieldLogger

	mu    sync.RWMutex
	guis  map[domain.GuiKey]Gui
	order []domain.GuiKey
	bound map[domain.SessionKey]domain.GuiKey
}

var _ ports.Catalogue = (*Catalogue)(nil)

func Load(path string, logger logrus.FieldLogger) (*Catalogue, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("catalogue path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalogue path: %w", err)
	}

	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	c := &Catalogue{
		path:  filepath.Clean(absPath),
		log:   logger,
		guis:  map[domain.GuiKey]Gui{},
		bound: map[domain.SessionKey]domain.GuiKey{},
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}

	return c, nil
}

// Reload rereads the catalogue file. Bound containers keep their keys.
func (c *Catalogue) Reload() error {
	file, err := readSchema(c.path)
	if err != nil {
		return err
	}

	guis, order, err := fromSchema(file)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.guis = guis
	c.order = order
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"path": c.path, "guis": len(order)}).Debug("catalogue loaded")
	return nil
}

func (c *Catalogue) Path() string {
	return c.path
}

func (c *Catalogue) List() []Gui {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Gui, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.guis[key])
	}
	return out
}

// Get looks a GUI up by key, ignoring case.
func (c *Catalogue) Get(key domain.GuiKey) (Gui, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gui, ok := c.lookup(key)
	if !ok {
		return Gui{}, fmt.Errorf("gui %q: %w", key, domain.ErrGuiNotFound)
	}
	return gui, nil
}

// Bind records that container shows the GUI key to user.
func (c *Catalogue) Bind(user domain.UserID, container domain.ContainerID, key domain.GuiKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gui, ok := c.lookup(key)
	if !ok {
		return fmt.Errorf("bind gui %q: %w", key, domain.ErrGuiNotFound)
	}
	c.bound[domain.SessionKey{User: user, Container: container}] = gui.Key
	return nil
}

func (c *Catalogue) Unbind(user domain.UserID, container domain.ContainerID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.bound, domain.SessionKey{User: user, Container: container})
}

func (c *Catalogue) ResolveContainerKey(user domain.UserID, container domain.ContainerID) (domain.GuiKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key, ok := c.bound[domain.SessionKey{User: user, Container: container}]
	return key, ok
}

func (c *Catalogue) SlotRoleMap(key domain.GuiKey) map[int]domain.RoleTag {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gui, ok := c.lookup(key)
	if !ok {
		return map[int]domain.RoleTag{}
	}

	roles := make(map[int]domain.RoleTag, len(gui.Slots))
	for index, slot := range gui.Slots {
		roles[index] = slot.Role
	}
	return roles
}

func (c *Catalogue) ItemIdentityForSlot(key domain.GuiKey, slot int) (domain.ItemIdentity, bool) {
	entry, ok := c.slot(key, slot)
	if !ok || entry.Item == "" {
		return "", false
	}
	return entry.Item, true
}

func (c *Catalogue) MaxAmountForSlot(key domain.GuiKey, slot int) int {
	entry, ok := c.slot(key, slot)
	if !ok {
		return 0
	}
	return entry.MaxAmount
}

func (c *Catalogue) GroupSlotsForRole(key domain.GuiKey, tag domain.RoleTag) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gui, ok := c.lookup(key)
	if !ok {
		return nil
	}
	return slices.Clone(gui.Groups[tag])
}

func (c *Catalogue) AllowedSlotsForItem(key domain.GuiKey, identity domain.ItemIdentity) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gui, ok := c.lookup(key)
	if !ok || identity == "" {
		return nil
	}

	var slots []int
	for index, slot := range gui.Slots {
		if slot.Item == identity && slot.Role.IsSpecial() {
			slots = append(slots, index)
		}
	}
	slices.Sort(slots)
	return slots
}

func (c *Catalogue) ConsumeOnPlacement(key domain.GuiKey, slot int) bool {
	entry, ok := c.slot(key, slot)
	return ok && entry.ConsumeOnPlace
}

func (c *Catalogue) CostForSlot(key domain.GuiKey, slot int) float64 {
	entry, ok := c.slot(key, slot)
	if !ok {
		return 0
	}
	return entry.Cost
}

func (c *Catalogue) slot(key domain.GuiKey, index int) (Slot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gui, ok := c.lookup(key)
	if !ok {
		return Slot{}, false
	}
	slot, ok := gui.Slots[index]
	return slot, ok
}

func (c *Catalogue) lookup(key domain.GuiKey) (Gui, bool) {
	if gui, ok := c.guis[key]; ok {
		return gui, true
	}
	for candidate, gui := range c.guis {
		if strings.EqualFold(string(candidate), string(key)) {
			return gui, true
		}
	}
	return Gui{}, false
}

func readSchema(path string) (fileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read catalogue file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode catalogue file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func fromSchema(file fileSchema) (map[domain.GuiKey]Gui, []domain.GuiKey, error) {
	guis := make(map[domain.GuiKey]Gui, len(file.Guis))
	order := make([]domain.GuiKey, 0, len(file.Guis))

	for _, entry := range file.Guis {
		key := domain.GuiKey(strings.TrimSpace(entry.Key))
		if key == "" {
			return nil, nil, errors.New("gui key is empty")
		}
		if _, exists := guis[key]; exists {
			return nil, nil, fmt.Errorf("duplicate gui %q", key)
		}

		gui := Gui{
			Key:    key,
			Title:  entry.Title,
			Rows:   entry.Rows,
			Slots:  make(map[int]Slot, len(entry.Slots)),
			Groups: map[domain.RoleTag][]int{},
		}

		for _, slot := range entry.Slots {
			if slot.Slot < 0 || slot.Slot >= gui.Size() {
				return nil, nil, fmt.Errorf("gui %q: slot %d outside %d slots", key, slot.Slot, gui.Size())
			}
			if _, exists := gui.Slots[slot.Slot]; exists {
				return nil, nil, fmt.Errorf("gui %q: slot %d defined twice", key, slot.Slot)
			}
			if strings.TrimSpace(slot.Role) == "" {
				return nil, nil, fmt.Errorf("gui %q: slot %d has no role", key, slot.Slot)
			}
			if slot.Cost < 0 {
				return nil, nil, fmt.Errorf("gui %q: slot %d has negative cost", key, slot.Slot)
			}

			gui.Slots[slot.Slot] = Slot{
				Index:          slot.Slot,
				Role:           domain.RoleTag(slot.Role),
				Item:           domain.ItemIdentity(slot.Item),
				MaxAmount:      slot.MaxAmount,
				ConsumeOnPlace: slot.ConsumeOnPlace,
				Cost:           slot.Cost,
			}
		}

		for _, group := range entry.Groups {
			tag := domain.RoleTag(group.Role)
			for _, index := range group.Slots {
				if index < 0 || index >= gui.Size() {
					return nil, nil, fmt.Errorf("gui %q: group %q slot %d outside %d slots", key, tag, index, gui.Size())
				}
			}
			gui.Groups[tag] = slices.Clone(group.Slots)
		}

		for _, slot := range gui.SortedSlots() {
			if !slot.Role.IsSpecial() {
				continue
			}
			if hasGroup(entry.Groups, slot.Role) {
				if !slices.Contains(gui.Groups[slot.Role], slot.Index) {
					return nil, nil, fmt.Errorf("gui %q: slot %d has role %q but is not in its group", key, slot.Index, slot.Role)
				}
				continue
			}
			gui.Groups[slot.Role] = append(gui.Groups[slot.Role], slot.Index)
		}

		guis[key] = gui
		order = append(order, key)
	}

	return guis, order, nil
}

func hasGroup(groups []groupSchema, tag domain.RoleTag) bool {
	return slices.ContainsFunc(groups, func(group groupSchema) bool {
		return domain.RoleTag(group.Role) == tag
	})
}
