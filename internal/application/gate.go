package application

import "github.com/bnema/slotguard/internal/domain"

func (e *Engine) isValid(stack domain.ItemStack) bool {
	if stack.IsEmpty() {
		return false
	}
	return e.registry.IsRegistered(stack)
}
