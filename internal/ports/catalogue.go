package ports

import (
	"context"

	"github.com/bnema/slotguard/internal/domain"
)

type Catalogue interface {
	ResolveContainerKey(user domain.UserID, container domain.ContainerID) (domain.GuiKey, bool)
	SlotRoleMap(key domain.GuiKey) map[int]domain.RoleTag
	ItemIdentityForSlot(key domain.GuiKey, slot int) (domain.ItemIdentity, bool)
	MaxAmountForSlot(key domain.GuiKey, slot int) int
	GroupSlotsForRole(key domain.GuiKey, tag domain.RoleTag) []int
	AllowedSlotsForItem(key domain.GuiKey, identity domain.ItemIdentity) []int
	ConsumeOnPlacement(key domain.GuiKey, slot int) bool
	CostForSlot(key domain.GuiKey, slot int) float64
}

// ButtonActions runs the application behavior bound to a button. consumed maps slot to the stack
// taken from it and may be empty.
type ButtonActions interface {
	Invoke(ctx context.Context, user domain.UserID, key domain.GuiKey, tag domain.RoleTag, consumed map[int]domain.ItemStack) error
}
