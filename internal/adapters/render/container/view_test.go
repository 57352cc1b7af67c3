package container

import (
	"testing"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSnapshot(t *testing.T) {
	balance := 42.5

	output, err := Render(Snapshot{
		Title: "Gem Forge",
		Key:   "forge",
		Rows:  1,
		Slots: []SlotView{
			{Index: 0, Kind: domain.RoleFiller, Tag: "filler"},
			{Index: 1, Kind: domain.RoleSpecialSlot, Tag: "ruby_slot", Item: domain.ItemStack{Material: "red_dye", Name: "Ruby", Amount: 12}},
			{Index: 8, Kind: domain.RoleButton, Tag: "craft"},
		},
		Groups:     []GroupView{{Tag: "ruby_slot", Used: 12, Capacity: 64}},
		Cursor:     domain.ItemStack{Material: "red_dye", Name: "Ruby", Amount: 3},
		Balance:    &balance,
		Notices:    []string{"Item 'Ruby' has been consumed from the slot."},
		Rejections: []string{"slot 1: group capacity exceeded"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Gem Forge")
	assert.Contains(t, output, "variant: standard")
	assert.Contains(t, output, "Rub12")
	assert.Contains(t, output, "[B]")
	assert.Contains(t, output, "[#]")
	assert.Contains(t, output, "12/64")
	assert.Contains(t, output, "cursor: Ruby x3")
	assert.Contains(t, output, "balance: 42.50")
	assert.Contains(t, output, "has been consumed")
	assert.Contains(t, output, "group capacity exceeded")
}

func TestRenderListEmpty(t *testing.T) {
	output, err := RenderList(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "guis: 0")
	assert.Contains(t, output, "No GUIs configured.")
}

func TestRenderList(t *testing.T) {
	output, err := RenderList([]Summary{{Key: "forge", Title: "Gem Forge", Rows: 3, Mapped: 5, Special: 3, Buttons: 1}})

	require.NoError(t, err)
	assert.Contains(t, output, "forge")
	assert.Contains(t, output, "rows=3 mapped=5 special=3 buttons=1")
}

func TestFillColorBounds(t *testing.T) {
	assert.Equal(t, "#50dc5a", string(fillColor(-1)))
	assert.Equal(t, "#ff465a", string(fillColor(2)))
}
