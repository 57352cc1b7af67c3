package yaml

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	yaml "gopkg.in/yaml.v3"
)

// ItemDetails describes one registered custom item. NumericID is a compact handle assigned on
// registration when left zero.
type ItemDetails struct {
	ID          domain.ItemIdentity `yaml:"id"`
	NumericID   int                 `yaml:"numeric_id,omitempty"`
	Material    string              `yaml:"material"`
	Name        string              `yaml:"name,omitempty"`
	Description string              `yaml:"description,omitempty"`
}

type fileSchema struct {
	Items []ItemDetails `yaml:"items"`
}

// Registry recognizes custom items by the identity tag a stack carries. A registered stack must
// also match the configured material when one is set.
type Registry struct {
	mu        sync.RWMutex
	items     map[domain.ItemIdentity]ItemDetails
	byNumeric map[int]domain.ItemIdentity
	nextID    int
}

var _ ports.ItemRegistry = (*Registry)(nil)

func NewRegistry(details ...ItemDetails) (*Registry, error) {
	r := &Registry{
		items:     make(map[domain.ItemIdentity]ItemDetails, len(details)),
		byNumeric: make(map[int]domain.ItemIdentity, len(details)),
	}
	for _, d := range details {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Load reads an items.yaml file. A missing file yields an empty registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewRegistry()
		}
		return nil, fmt.Errorf("read items file: %w", err)
	}

	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode items file: %w", err)
	}

	registry, err := NewRegistry(file.Items...)
	if err != nil {
		return nil, fmt.Errorf("load items file: %w", err)
	}
	return registry, nil
}

func (r *Registry) Register(details ItemDetails) error {
	details.ID = domain.ItemIdentity(strings.TrimSpace(string(details.ID)))
	if details.ID == "" {
		return errors.New("item details missing id")
	}
	if details.NumericID < 0 {
		return fmt.Errorf("item %q: numeric id must be positive", details.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[details.ID]; ok {
		return fmt.Errorf("item %q registered twice (numeric id %d)", details.ID, existing.NumericID)
	}

	if details.NumericID == 0 {
		r.nextID++
		details.NumericID = r.nextID
	} else if details.NumericID > r.nextID {
		r.nextID = details.NumericID
	}
	if owner, collision := r.byNumeric[details.NumericID]; collision {
		return fmt.Errorf("item %q: numeric id %d already assigned to %q", details.ID, details.NumericID, owner)
	}

	r.items[details.ID] = details
	r.byNumeric[details.NumericID] = details.ID
	return nil
}

func (r *Registry) Lookup(id domain.ItemIdentity) (ItemDetails, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	details, ok := r.items[id]
	return details, ok
}

func (r *Registry) LookupByNumericID(id int) (ItemDetails, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byNumeric[id]
	if !ok {
		return ItemDetails{}, false
	}
	return r.items[identity], true
}

// List returns every item ordered by numeric id.
func (r *Registry) List() []ItemDetails {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ItemDetails, 0, len(r.items))
	for _, details := range r.items {
		out = append(out, details)
	}
	slices.SortFunc(out, func(a, b ItemDetails) int { return a.NumericID - b.NumericID })
	return out
}

// Stack builds a stack of a registered item.
func (r *Registry) Stack(id domain.ItemIdentity, amount int) (domain.ItemStack, error) {
	details, ok := r.Lookup(id)
	if !ok {
		return domain.ItemStack{}, fmt.Errorf("item %q: %w", id, domain.ErrUnregisteredItem)
	}

	return domain.ItemStack{
		Material: details.Material,
		Tag:      string(details.ID),
		Name:     details.Name,
		Amount:   amount,
	}, nil
}

func (r *Registry) IsRegistered(stack domain.ItemStack) bool {
	if stack.IsEmpty() || stack.Tag == "" {
		return false
	}

	details, ok := r.Lookup(domain.ItemIdentity(stack.Tag))
	if !ok {
		return false
	}
	return details.Material == "" || strings.EqualFold(details.Material, stack.Material)
}

func (r *Registry) IdentityOf(stack domain.ItemStack) domain.ItemIdentity {
	if !r.IsRegistered(stack) {
		return ""
	}
	return domain.ItemIdentity(stack.Tag)
}
