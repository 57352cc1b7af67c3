package ports

import "github.com/bnema/slotguard/internal/domain"

// Cursors exposes the stack each user holds on the cursor. ok is false once the user is gone.
type Cursors interface {
	Cursor(user domain.UserID) (domain.ItemStack, bool)
	SetCursor(user domain.UserID, stack domain.ItemStack) bool
}

type Notifier interface {
	Notify(user domain.UserID, message string)
}

// Scheduler runs fn on the host's next scheduler pass, on the same execution context as events.
type Scheduler interface {
	RunNextTick(fn func())
}
