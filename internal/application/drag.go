package application

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/sirupsen/logrus"
)

type dragGroup struct {
	slots    []int
	limit    func(slot int) int
	incoming map[int]domain.ItemStack
}

type dragPlan struct {
	groups  []dragGroup
	consume []int
	cost    float64
	managed bool
}

// HandleDrag validates every touched top slot before changing any of them. A drag that only
// touches plain storage within its limits is left to the host.
func (e *Engine) HandleDrag(ctx context.Context, ev domain.DragEvent) domain.Outcome {
	if ev.Container == nil {
		return domain.Outcome{}
	}
	key, ok := e.catalogue.ResolveContainerKey(ev.User, ev.Container.ID)
	if !ok {
		return domain.Outcome{}
	}

	return e.holdWhilePending(ev.User, ev.Container.ID, e.routeDrag(ctx, key, ev))
}

func (e *Engine) routeDrag(ctx context.Context, key domain.GuiKey, ev domain.DragEvent) domain.Outcome {
	cursor := e.effectiveCursor(ev.User, ev.Container.ID, ev.Cursor)
	if !coversDrag(cursor, ev.NewItems) {
		e.log.WithFields(logrus.Fields{"user": ev.User, "gui": key, "cursor": cursor.Amount}).Debug("drag exceeds cursor")
		return suppressed()
	}

	drag := NormalizeDrag(ev, cursor)
	if len(drag.Slots) == 0 {
		return passThrough()
	}

	if key.Variant() == domain.VariantEnderlink {
		roles := e.catalogue.SlotRoleMap(key)
		for _, slot := range drag.Slots {
			if _, mapped := roles[slot]; mapped {
				return suppressed()
			}
		}
		return passThrough()
	}

	plan, rejection := e.planDrag(ctx, key, ev.User, ev.Container, drag)
	if rejection != nil {
		return e.reject(ev.User, key, drag.Shape(), rejection)
	}
	if plan == nil {
		return suppressed()
	}
	if !plan.managed {
		return passThrough()
	}

	leftover := e.commitDrag(ctx, key, ev.User, ev.Container, plan)
	e.reconcileCursor(ev.User, ev.Container.ID, drag.Cursor.WithAmount(drag.Cursor.Amount-drag.Total()+leftover))

	return suppressed()
}

// planDrag returns a nil plan without rejection when the drag touches a button or filler slot.
func (e *Engine) planDrag(ctx context.Context, key domain.GuiKey, user domain.UserID, container *domain.Container, drag MultiSlotDrag) (*dragPlan, *domain.Rejection) {
	plan := &dragPlan{}
	limit := e.slotLimit(key)
	processed := map[string]bool{}
	grouped := map[int]bool{}

	for _, slot := range drag.Slots {
		stack := drag.Items[slot]
		if !e.isValid(stack) {
			return nil, domain.Reject(domain.ErrUnregisteredItem, slot, noticeDragUnregistered)
		}

		role := e.Classify(key, slot)
		switch role.Kind {
		case domain.RoleButton, domain.RoleFiller:
			return nil, nil

		case domain.RoleSpecialSlot:
			if rejection := e.checkIdentity(role, slot, stack); rejection != nil {
				return nil, rejection
			}

			group := inBounds(container, e.catalogue.GroupSlotsForRole(key, role.Tag))
			if len(group) == 0 {
				group = []int{slot}
			}
			if !slices.Contains(group, slot) {
				return nil, domain.Reject(domain.ErrNoSlotBinding, slot, noticeNoBinding)
			}

			id := groupID(group)
			if !processed[id] {
				processed[id] = true

				incoming := map[int]domain.ItemStack{}
				added := 0
				for _, member := range group {
					if item, ok := drag.Items[member]; ok {
						incoming[member] = item
						added += item.Amount
						grouped[member] = true
					}
				}

				capacity := capacityOf(group, limit)
				if TotalOccupancy(container, group)+added > capacity {
					return nil, domain.Reject(domain.ErrGroupCapacityExceeded, slot,
						fmt.Sprintf("You cannot place more than %d items in this slot group.", capacity))
				}
				plan.groups = append(plan.groups, dragGroup{slots: group, limit: limit, incoming: incoming})
			}

			if e.catalogue.ConsumeOnPlacement(key, slot) {
				plan.consume = append(plan.consume, slot)
				plan.cost += e.catalogue.CostForSlot(key, slot)
			}
			plan.managed = true

		default:
			if grouped[slot] {
				continue
			}
			perSlotMax := limit(slot)
			existing := container.Item(slot)
			if !existing.IsEmpty() && existing.IsSimilar(stack) && existing.Amount+stack.Amount > perSlotMax {
				return nil, domain.Reject(domain.ErrGroupCapacityExceeded, slot,
					fmt.Sprintf("You cannot place more than %d items in this slot.", perSlotMax))
			}
			if existing.IsEmpty() && stack.Amount > perSlotMax {
				return nil, domain.Reject(domain.ErrGroupCapacityExceeded, slot,
					fmt.Sprintf("You cannot place more than %d items in this slot.", perSlotMax))
			}
			plan.groups = append(plan.groups, dragGroup{
				slots:    []int{slot},
				limit:    limit,
				incoming: map[int]domain.ItemStack{slot: stack},
			})
		}
	}

	if plan.cost > 0 {
		ok, err := e.ledger.HasBalance(ctx, user, plan.cost)
		if err != nil {
			e.log.WithFields(logrus.Fields{"user": user, "gui": key}).WithError(err).Warn("balance check failed")
		}
		if err != nil || !ok {
			return nil, domain.Reject(domain.ErrInsufficientBalance, plan.consume[0], noticeInsufficientBalance)
		}
	}

	return plan, nil
}

// commitDrag applies a validated plan and returns how many dragged items found no slot.
func (e *Engine) commitDrag(ctx context.Context, key domain.GuiKey, user domain.UserID, container *domain.Container, plan *dragPlan) int {
	leftover := 0

	for _, group := range plan.groups {
		overflow := 0
		var proto domain.ItemStack
		for _, slot := range group.slots {
			item, ok := group.incoming[slot]
			if !ok {
				continue
			}
			result, moved := fill(container.Item(slot), item, group.limit(slot))
			container.SetItem(slot, result)
			overflow += item.Amount - moved
			proto = item
		}
		if overflow > 0 {
			leftover += DistributeBounded(container, proto.WithAmount(overflow), group.slots, group.limit)
		}
	}

	for _, slot := range plan.consume {
		item := container.Item(slot)
		if item.IsEmpty() {
			continue
		}
		if err := e.charge(ctx, key, user, slot); err != nil {
			e.logChargeFailure(user, key, slot, err)
			continue
		}
		container.Clear(slot)
		e.notifier.Notify(user, fmt.Sprintf("Item '%s' has been consumed from the slot.", item.Label()))
	}

	return leftover
}

// coversDrag reports whether cursor can supply every stack the host wants to spread.
func coversDrag(cursor domain.ItemStack, items map[int]domain.ItemStack) bool {
	total := 0
	for _, stack := range items {
		if stack.IsEmpty() {
			continue
		}
		if !stack.IsSimilar(cursor) {
			return false
		}
		total += stack.Amount
	}
	return total <= cursor.Amount
}
