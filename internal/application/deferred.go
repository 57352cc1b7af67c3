package application

import (
	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
)

// deferredTasks schedules at most one live follow-up per session. Scheduling again for the same
// session supersedes the earlier task.
type deferredTasks struct {
	scheduler ports.Scheduler
	next      uint64
	pending   map[domain.SessionKey]uint64
}

func newDeferredTasks(scheduler ports.Scheduler) *deferredTasks {
	return &deferredTasks{scheduler: scheduler, pending: map[domain.SessionKey]uint64{}}
}

func (d *deferredTasks) Schedule(key domain.SessionKey, fn func()) {
	d.next++
	token := d.next
	d.pending[key] = token

	d.scheduler.RunNextTick(func() {
		if current, ok := d.pending[key]; !ok || current != token {
			return
		}
		delete(d.pending, key)
		fn()
	})
}

func (d *deferredTasks) Pending(key domain.SessionKey) bool {
	_, ok := d.pending[key]
	return ok
}

func (d *deferredTasks) CancelUser(user domain.UserID) int {
	cancelled := 0
	for key := range d.pending {
		if key.User == user {
			delete(d.pending, key)
			cancelled++
		}
	}
	return cancelled
}

// reconcileCursor sets the user's cursor to stack on the next tick. Until then, later events in
// the same session see stack as their cursor.
func (e *Engine) reconcileCursor(user domain.UserID, container domain.ContainerID, stack domain.ItemStack) {
	key := domain.SessionKey{User: user, Container: container}
	e.pendingCursor[key] = stack

	e.deferred.Schedule(key, func() {
		target, ok := e.pendingCursor[key]
		if !ok {
			return
		}
		delete(e.pendingCursor, key)

		if _, online := e.cursors.Cursor(user); !online {
			e.log.WithField("user", user).Debug("cursor correction dropped, user gone")
			return
		}
		if !e.cursors.SetCursor(user, target) {
			e.log.WithField("user", user).Warn("cursor correction refused by host")
		}
	})
}

func (e *Engine) effectiveCursor(user domain.UserID, container domain.ContainerID, reported domain.ItemStack) domain.ItemStack {
	if stack, ok := e.pendingCursor[domain.SessionKey{User: user, Container: container}]; ok {
		return stack
	}
	return reported
}
