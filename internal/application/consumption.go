package application

import (
	"context"
	"fmt"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	noticeInsufficientBalance = "You don't have enough balance to perform this action."
	noticeButtonBalance       = "You don't have enough balance for this action."
)

// charge debits the slot's cost. The balance is checked before the withdrawal so a refused charge
// leaves the ledger untouched.
func (e *Engine) charge(ctx context.Context, key domain.GuiKey, user domain.UserID, slot int) error {
	cost := e.catalogue.CostForSlot(key, slot)
	if cost <= 0 {
		return nil
	}

	ok, err := e.ledger.HasBalance(ctx, user, cost)
	if err != nil {
		return fmt.Errorf("check balance: %w", err)
	}
	if !ok {
		return domain.ErrInsufficientBalance
	}
	if err := e.ledger.Withdraw(ctx, user, cost); err != nil {
		return fmt.Errorf("withdraw %.2f: %w", cost, err)
	}

	return nil
}

// consumeAt places moving into slot and consumes the resulting stack in one step. The container is
// changed only after the charge succeeds. It returns how many cursor items were used. When nothing
// fits, the resident stack is left alone and nothing is charged.
func (e *Engine) consumeAt(ctx context.Context, key domain.GuiKey, user domain.UserID, container *domain.Container, slot int, moving domain.ItemStack) (int, *domain.Rejection) {
	result, moved := fill(container.Item(slot), moving, e.maxAmount(key, slot))
	if moved == 0 {
		return 0, nil
	}

	if err := e.charge(ctx, key, user, slot); err != nil {
		e.logChargeFailure(user, key, slot, err)
		return 0, domain.Reject(domain.ErrInsufficientBalance, slot, noticeInsufficientBalance)
	}

	container.Clear(slot)
	e.notifier.Notify(user, fmt.Sprintf("Item '%s' has been consumed from the slot.", result.Label()))
	e.log.WithFields(logrus.Fields{
		"user":   user,
		"gui":    key,
		"slot":   slot,
		"amount": result.Amount,
	}).Info("slot consumed")

	return moved, nil
}

// pressButton consumes every non-empty slot of the button's group the user can pay for, then runs
// the button action with what was taken.
func (e *Engine) pressButton(ctx context.Context, key domain.GuiKey, user domain.UserID, container *domain.Container, slot int, tag domain.RoleTag) domain.Outcome {
	consumed := map[int]domain.ItemStack{}

	if e.catalogue.ConsumeOnPlacement(key, slot) {
		roles := e.catalogue.SlotRoleMap(key)
		for _, member := range inBounds(container, e.catalogue.GroupSlotsForRole(key, tag)) {
			if memberTag, mapped := roles[member]; mapped && memberTag.KindOf() != domain.RoleSpecialSlot {
				continue
			}

			item := container.Item(member)
			if item.IsEmpty() {
				continue
			}

			if err := e.charge(ctx, key, user, member); err != nil {
				e.logChargeFailure(user, key, member, err)
				e.notifier.Notify(user, noticeButtonBalance)
				continue
			}

			consumed[member] = item
			container.Clear(member)
		}
	}

	if err := e.actions.Invoke(ctx, user, key, tag, consumed); err != nil {
		e.log.WithFields(logrus.Fields{"user": user, "gui": key, "button": tag}).WithError(err).Error("button action failed")
	}

	return suppressed()
}

func (e *Engine) logChargeFailure(user domain.UserID, key domain.GuiKey, slot int, err error) {
	e.log.WithFields(logrus.Fields{"user": user, "gui": key, "slot": slot}).WithError(err).Debug("charge refused")
}
