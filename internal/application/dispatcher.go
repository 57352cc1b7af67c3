package application

import (
	"context"
	"fmt"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	noticeShiftUnregistered = "Only registered items can be shift-clicked into this GUI."
	noticePlaceUnregistered = "Only registered items can be placed here."
	noticeDragUnregistered  = "Only registered items can be placed in this slot."
	noticeNoBinding         = "This item has no place in this GUI."
	noticeGroupFull         = "The inventory is already full for this item."
	noticeUndefinedItem     = "This slot has no item defined."
)

const defaultMaxAmount = 64

// HandleClick validates and executes one click. Clicks in containers the catalogue does not know
// return the zero Outcome.
func (e *Engine) HandleClick(ctx context.Context, ev domain.ClickEvent) domain.Outcome {
	if ev.Container == nil {
		return domain.Outcome{}
	}
	key, ok := e.catalogue.ResolveContainerKey(ev.User, ev.Container.ID)
	if !ok {
		return domain.Outcome{}
	}

	return e.holdWhilePending(ev.User, ev.Container.ID, e.routeClick(ctx, key, ev))
}

func (e *Engine) routeClick(ctx context.Context, key domain.GuiKey, ev domain.ClickEvent) domain.Outcome {
	if key.Variant() == domain.VariantEnderlink {
		return e.enderlinkClick(ctx, key, ev)
	}

	if UsesHotbarShortcut(ev) {
		e.log.WithFields(logrus.Fields{"user": ev.User, "gui": key, "slot": ev.Slot}).Debug("hotbar shortcut blocked")
		return suppressed()
	}

	cursor := e.effectiveCursor(ev.User, ev.Container.ID, ev.Cursor)
	switch in := Normalize(ev, cursor).(type) {
	case ShiftTransfer:
		return e.shiftTransfer(key, ev, in)
	case DirectPlacement:
		return e.directPlacement(ctx, key, ev, in)
	case PlainInteraction:
		return e.plainInteraction(ctx, key, ev, in)
	default:
		return passThrough()
	}
}

func (e *Engine) enderlinkClick(ctx context.Context, key domain.GuiKey, ev domain.ClickEvent) domain.Outcome {
	if !ev.ClickedTop {
		return passThrough()
	}

	tag, mapped := e.catalogue.SlotRoleMap(key)[ev.Slot]
	if !mapped {
		return passThrough()
	}

	if tag.KindOf() == domain.RoleButton {
		if err := e.actions.Invoke(ctx, ev.User, key, tag, map[int]domain.ItemStack{}); err != nil {
			e.log.WithFields(logrus.Fields{"user": ev.User, "gui": key, "button": tag}).WithError(err).Error("enderlink button failed")
		}
	}

	return suppressed()
}

func (e *Engine) shiftTransfer(key domain.GuiKey, ev domain.ClickEvent, in ShiftTransfer) domain.Outcome {
	if !e.isValid(in.Source) {
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrUnregisteredItem, ev.Slot, noticeShiftUnregistered))
	}

	identity := e.registry.IdentityOf(in.Source)
	allowed := inBounds(ev.Container, e.catalogue.AllowedSlotsForItem(key, identity))
	if len(allowed) == 0 {
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrNoSlotBinding, ev.Slot, noticeNoBinding))
	}

	limit := e.slotLimit(key)
	if TotalOccupancy(ev.Container, allowed) >= capacityOf(allowed, limit) {
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrGroupCapacityExceeded, allowed[0], noticeGroupFull))
	}

	remainder := DistributeBounded(ev.Container, in.Source, allowed, limit)
	e.log.WithFields(logrus.Fields{
		"user":   ev.User,
		"gui":    key,
		"item":   identity,
		"moved":  in.Source.Amount - remainder,
		"remain": remainder,
	}).Debug("shift transfer distributed")

	return domain.Outcome{
		Handled:    true,
		Suppress:   true,
		SetCurrent: true,
		Current:    in.Source.WithAmount(remainder),
	}
}

func (e *Engine) directPlacement(ctx context.Context, key domain.GuiKey, ev domain.ClickEvent, in DirectPlacement) domain.Outcome {
	if in.Cursor.IsEmpty() {
		return suppressed()
	}
	if !e.isValid(in.Cursor) {
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrUnregisteredItem, in.Slot, noticePlaceUnregistered))
	}

	role := e.Classify(key, in.Slot)
	switch role.Kind {
	case domain.RoleFiller:
		return suppressed()
	case domain.RoleButton:
		return e.pressButton(ctx, key, ev.User, ev.Container, in.Slot, role.Tag)
	case domain.RoleSpecialSlot:
		if rejection := e.checkIdentity(role, in.Slot, in.Cursor); rejection != nil {
			return e.reject(ev.User, key, in.Shape(), rejection)
		}
		if e.catalogue.ConsumeOnPlacement(key, in.Slot) {
			used, rejection := e.consumeAt(ctx, key, ev.User, ev.Container, in.Slot, in.Moving())
			if rejection != nil {
				return e.reject(ev.User, key, in.Shape(), rejection)
			}
			e.reconcileCursor(ev.User, ev.Container.ID, in.Cursor.WithAmount(in.Cursor.Amount-used))
			return suppressed()
		}
	}

	moving := in.Moving()
	remainder := Distribute(ev.Container, moving, []int{in.Slot}, e.maxAmount(key, in.Slot))
	placed := moving.Amount - remainder
	e.reconcileCursor(ev.User, ev.Container.ID, in.Cursor.WithAmount(in.Cursor.Amount-placed))

	return suppressed()
}

func (e *Engine) plainInteraction(ctx context.Context, key domain.GuiKey, ev domain.ClickEvent, in PlainInteraction) domain.Outcome {
	if !in.Top {
		return passThrough()
	}

	role := e.Classify(key, in.Slot)
	switch role.Kind {
	case domain.RolePlainStorage:
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrNoSlotBinding, in.Slot, ""))
	case domain.RoleFiller:
		return suppressed()
	case domain.RoleButton:
		return e.pressButton(ctx, key, ev.User, ev.Container, in.Slot, role.Tag)
	}

	if !role.HasRequired {
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrUndefinedRequiredItem, in.Slot, noticeUndefinedItem))
	}
	if in.Cursor.IsEmpty() {
		return passThrough()
	}
	if !e.isValid(in.Cursor) {
		return e.reject(ev.User, key, in.Shape(), domain.Reject(domain.ErrUnregisteredItem, in.Slot, noticePlaceUnregistered))
	}
	if rejection := e.checkIdentity(role, in.Slot, in.Cursor); rejection != nil {
		return e.reject(ev.User, key, in.Shape(), rejection)
	}

	if e.catalogue.ConsumeOnPlacement(key, in.Slot) {
		used, rejection := e.consumeAt(ctx, key, ev.User, ev.Container, in.Slot, in.Cursor)
		if rejection != nil {
			return e.reject(ev.User, key, in.Shape(), rejection)
		}
		e.reconcileCursor(ev.User, ev.Container.ID, in.Cursor.WithAmount(in.Cursor.Amount-used))
		return suppressed()
	}

	return passThrough()
}

// HandleClose saves the current enderlink page. Pending cursor corrections are left to run.
func (e *Engine) HandleClose(ctx context.Context, ev domain.CloseEvent) {
	if ev.Container == nil {
		return
	}
	key, ok := e.catalogue.ResolveContainerKey(ev.User, ev.Container.ID)
	if !ok || key.Variant() != domain.VariantEnderlink {
		return
	}
	if e.pages == nil {
		e.log.WithField("user", ev.User).Warn("enderlink closed without page persistence")
		return
	}

	if err := e.pages.SaveCurrentPage(ctx, ev.User, key, ev.Container); err != nil {
		e.log.WithFields(logrus.Fields{"user": ev.User, "gui": key}).WithError(err).Error("save enderlink page")
	}
}

// HandleDisconnect drops every deferred task of a user who left.
func (e *Engine) HandleDisconnect(user domain.UserID) {
	cancelled := e.deferred.CancelUser(user)
	for key := range e.pendingCursor {
		if key.User == user {
			delete(e.pendingCursor, key)
		}
	}
	if cancelled > 0 {
		e.log.WithFields(logrus.Fields{"user": user, "tasks": cancelled}).Debug("deferred tasks cancelled")
	}
}

// holdWhilePending turns a pass-through into a suppression while a cursor correction is queued for
// the session. The host would otherwise apply it to a cursor the engine has already changed.
func (e *Engine) holdWhilePending(user domain.UserID, container domain.ContainerID, out domain.Outcome) domain.Outcome {
	if out.Suppress || !e.PendingCorrection(user, container) {
		return out
	}
	e.log.WithFields(logrus.Fields{"user": user, "container": container}).Debug("interaction held until cursor correction")
	return suppressed()
}

// PendingCorrection reports whether a cursor correction is queued for the session.
func (e *Engine) PendingCorrection(user domain.UserID, container domain.ContainerID) bool {
	return e.deferred.Pending(domain.SessionKey{User: user, Container: container})
}

func (e *Engine) checkIdentity(role domain.SlotRole, slot int, stack domain.ItemStack) *domain.Rejection {
	if !role.HasRequired {
		return domain.Reject(domain.ErrUndefinedRequiredItem, slot, noticeUndefinedItem)
	}
	identity := e.registry.IdentityOf(stack)
	if identity != role.Required {
		return domain.Reject(domain.ErrIdentityMismatch, slot,
			fmt.Sprintf("'%s' does not belong here, this slot only accepts '%s'.", identity, role.Required))
	}
	return nil
}

func (e *Engine) maxAmount(key domain.GuiKey, slot int) int {
	if limit := e.catalogue.MaxAmountForSlot(key, slot); limit > 0 {
		return limit
	}
	return defaultMaxAmount
}

func (e *Engine) slotLimit(key domain.GuiKey) func(int) int {
	return func(slot int) int { return e.maxAmount(key, slot) }
}
