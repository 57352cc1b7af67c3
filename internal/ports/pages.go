package ports

import (
	"context"

	"github.com/bnema/slotguard/internal/domain"
)

type PagePersistence interface {
	SaveCurrentPage(ctx context.Context, user domain.UserID, key domain.GuiKey, container *domain.Container) error
}
