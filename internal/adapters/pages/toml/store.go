package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeDirMode  = 0o700
	pageFileMode  = 0o600
	pageExtension = ".toml"
)

// Store keeps one file of enderlink pages per user under root. Slots the catalogue maps to a role
// are navigation and are never stored.
type Store struct {
	root      string
	catalogue ports.Catalogue
	mu        sync.RWMutex
}

var _ ports.PagePersistence = (*Store)(nil)

func NewStore(root string, catalogue ports.Catalogue) *Store {
	return &Store{root: filepath.Clean(root), catalogue: catalogue}
}

func (s *Store) SaveCurrentPage(ctx context.Context, user domain.UserID, key domain.GuiKey, container *domain.Container) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if container == nil {
		return errors.New("save page: container is nil")
	}

	path, err := s.pathForUser(user)
	if err != nil {
		return err
	}

	var mapped map[int]domain.RoleTag
	if s.catalogue != nil {
		mapped = s.catalogue.SlotRoleMap(key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readSchema(path)
	if err != nil {
		return err
	}

	page := pageSchema{Index: file.Current}
	for slot, item := range container.Snapshot() {
		if _, nav := mapped[slot]; nav {
			continue
		}
		if item.IsEmpty() {
			continue
		}
		page.Items = append(page.Items, itemSchema{
			Slot:     slot,
			Material: item.Material,
			Tag:      item.Tag,
			Name:     item.Name,
			Amount:   item.Amount,
		})
	}

	index := slices.IndexFunc(file.Pages, func(p pageSchema) bool { return p.Index == file.Current })
	if index < 0 {
		file.Pages = append(file.Pages, page)
	} else {
		file.Pages[index] = page
	}
	slices.SortFunc(file.Pages, func(a, b pageSchema) int { return a.Index - b.Index })

	return writeSchema(path, file)
}

// CurrentPage returns the page the user last had open.
func (s *Store) CurrentPage(ctx context.Context, user domain.UserID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	path, err := s.pathForUser(user)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := readSchema(path)
	if err != nil {
		return 0, err
	}
	return file.Current, nil
}

func (s *Store) SetCurrentPage(ctx context.Context, user domain.UserID, page int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if page < 0 {
		return fmt.Errorf("set page %d: page must not be negative", page)
	}
	path, err := s.pathForUser(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readSchema(path)
	if err != nil {
		return err
	}
	file.Current = page
	return writeSchema(path, file)
}

// LoadPage returns the stored stacks of one page keyed by slot.
func (s *Store) LoadPage(ctx context.Context, user domain.UserID, page int) (map[int]domain.ItemStack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.pathForUser(user)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := readSchema(path)
	if err != nil {
		return nil, err
	}

	items := map[int]domain.ItemStack{}
	for _, p := range file.Pages {
		if p.Index != page {
			continue
		}
		for _, item := range p.Items {
			items[item.Slot] = domain.ItemStack{Material: item.Material, Tag: item.Tag, Name: item.Name, Amount: item.Amount}
		}
	}
	return items, nil
}

// Pages lists the stored page indexes in order.
func (s *Store) Pages(ctx context.Context, user domain.UserID) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.pathForUser(user)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := readSchema(path)
	if err != nil {
		return nil, err
	}

	indexes := make([]int, 0, len(file.Pages))
	for _, p := range file.Pages {
		indexes = append(indexes, p.Index)
	}
	return indexes, nil
}

func (s *Store) pathForUser(user domain.UserID) (string, error) {
	trimmed := strings.TrimSpace(string(user))
	if trimmed == "" {
		return "", errors.New("page user is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.ContainsAny(cleaned, `/\`) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid page user %q", user)
	}

	return filepath.Join(s.root, cleaned+pageExtension), nil
}

func readSchema(path string) (fileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read pages file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode pages file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func writeSchema(path string, file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create pages directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode pages file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".pages-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp pages file: %w", err)
	}
	tempName := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write temp pages file: %w", err), tempFile.Close(), os.Remove(tempName))
	}
	if err := tempFile.Chmod(pageFileMode); err != nil {
		return errors.Join(fmt.Errorf("chmod temp pages file: %w", err), tempFile.Close(), os.Remove(tempName))
	}
	if err := tempFile.Close(); err != nil {
		return errors.Join(fmt.Errorf("close temp pages file: %w", err), os.Remove(tempName))
	}
	if err := os.Rename(tempName, path); err != nil {
		return errors.Join(fmt.Errorf("replace pages file: %w", err), os.Remove(tempName))
	}

	return nil
}
