package ports

import "github.com/bnema/slotguard/internal/domain"

type ItemRegistry interface {
	IsRegistered(stack domain.ItemStack) bool
	IdentityOf(stack domain.ItemStack) domain.ItemIdentity
}
