package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsFile = `
items:
  - id: ruby
    numeric_id: 4
    material: red_dye
    name: Ruby
  - id: sapphire
    material: blue_dye
    name: Sapphire
  - id: token
`

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(itemsFile), 0o600))

	registry, err := Load(path)
	require.NoError(t, err)

	items := registry.List()
	require.Len(t, items, 3)
	assert.Equal(t, domain.ItemIdentity("ruby"), items[0].ID)
	assert.Equal(t, 5, items[1].NumericID)
	assert.Equal(t, 6, items[2].NumericID)

	byNumeric, ok := registry.LookupByNumericID(5)
	require.True(t, ok)
	assert.Equal(t, domain.ItemIdentity("sapphire"), byNumeric.ID)
}

func TestRegistryMatchesTagAndMaterial(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(
		ItemDetails{ID: "ruby", Material: "red_dye", Name: "Ruby"},
		ItemDetails{ID: "token"},
	)
	require.NoError(t, err)

	ruby, err := registry.Stack("ruby", 3)
	require.NoError(t, err)
	assert.True(t, registry.IsRegistered(ruby))
	assert.Equal(t, domain.ItemIdentity("ruby"), registry.IdentityOf(ruby))

	forged := ruby
	forged.Material = "redstone"
	assert.False(t, registry.IsRegistered(forged))
	assert.Empty(t, registry.IdentityOf(forged))

	assert.True(t, registry.IsRegistered(domain.ItemStack{Material: "paper", Tag: "token", Amount: 1}))
	assert.False(t, registry.IsRegistered(domain.ItemStack{Material: "dirt", Amount: 1}))
	assert.False(t, registry.IsRegistered(ruby.WithAmount(0)))

	_, err = registry.Stack("emerald", 1)
	assert.ErrorIs(t, err, domain.ErrUnregisteredItem)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(ItemDetails{ID: "ruby"}, ItemDetails{ID: "ruby"})
	require.Error(t, err)

	_, err = NewRegistry(ItemDetails{ID: "ruby", NumericID: 2}, ItemDetails{ID: "gem", NumericID: 2})
	require.Error(t, err)

	_, err = NewRegistry(ItemDetails{ID: " "})
	require.Error(t, err)
}

func TestLoadRegistryMissingFile(t *testing.T) {
	t.Parallel()

	registry, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, registry.List())
}
