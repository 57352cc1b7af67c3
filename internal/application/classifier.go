package application

import "github.com/bnema/slotguard/internal/domain"

// Classify derives the role of a slot from the catalogue. The result is not cached.
func (e *Engine) Classify(key domain.GuiKey, slot int) domain.SlotRole {
	tag, ok := e.catalogue.SlotRoleMap(key)[slot]
	if !ok {
		return domain.SlotRole{Kind: domain.RolePlainStorage}
	}

	role := domain.SlotRole{Kind: tag.KindOf(), Tag: tag}
	if role.Kind == domain.RoleSpecialSlot {
		required, ok := e.catalogue.ItemIdentityForSlot(key, slot)
		role.Required = required
		role.HasRequired = ok && required != ""
	}

	return role
}
