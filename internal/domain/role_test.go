package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTagKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  RoleTag
		kind RoleKind
	}{
		{tag: "ruby_slot", kind: RoleSpecialSlot},
		{tag: "filler", kind: RoleFiller},
		{tag: "Filler_black", kind: RoleFiller},
		{tag: "craft", kind: RoleButton},
		{tag: "slot_picker", kind: RoleButton},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.tag.KindOf())
		})
	}
}

func TestGuiKeyVariantIgnoresCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, VariantEnderlink, GuiKey("enderlink").Variant())
	assert.Equal(t, VariantEnderlink, GuiKey("EnderLink").Variant())
	assert.Equal(t, VariantStandard, GuiKey("forge").Variant())
}

func TestRejectionUnwrapsKind(t *testing.T) {
	t.Parallel()

	rejection := Reject(ErrGroupCapacityExceeded, 3, "full")

	assert.ErrorIs(t, rejection, ErrGroupCapacityExceeded)
	assert.Equal(t, "slot 3: group capacity exceeded: full", rejection.Error())
}
