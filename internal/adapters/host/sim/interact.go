package sim

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/slotguard/internal/domain"
)

// Click is one click as the player performs it. Top selects the open container; otherwise Slot
// indexes the player's inventory.
type Click struct {
	Top    bool
	Slot   int
	Action domain.ClickAction
	Type   domain.ClickType
}

// Click delivers the click to the handler and applies the host's default behavior when the
// handler lets it through.
func (h *Host) Click(ctx context.Context, user domain.UserID, click Click) (domain.Outcome, error) {
	p, err := h.player(user)
	if err != nil {
		return domain.Outcome{}, err
	}
	if p.session == nil {
		return domain.Outcome{}, fmt.Errorf("click as %q: %w", user, ErrNoOpenSession)
	}
	if h.handler == nil {
		return domain.Outcome{}, ErrNoHandler
	}

	clicked, other := p.inventory, p.session.Container
	if click.Top {
		clicked, other = p.session.Container, p.inventory
	}
	if !clicked.InBounds(click.Slot) {
		return domain.Outcome{}, fmt.Errorf("click slot %d: out of range", click.Slot)
	}

	clickType := click.Type
	if clickType == "" {
		clickType = domain.ClickLeft
	}

	out := h.handler.HandleClick(ctx, domain.ClickEvent{
		User:       user,
		Container:  p.session.Container,
		ClickedTop: click.Top,
		Slot:       click.Slot,
		Action:     click.Action,
		Click:      clickType,
		Cursor:     p.cursor,
		Current:    clicked.Item(click.Slot),
	})

	if out.SetCurrent {
		clicked.SetItem(click.Slot, out.Current)
	}
	if !out.Suppress {
		applyClick(p, clicked, other, click.Slot, click.Action)
	}

	return out, nil
}

// Drag spreads the cursor over raw view indices: indices below the container size address the
// container, the rest the player's inventory.
func (h *Host) Drag(ctx context.Context, user domain.UserID, amounts map[int]int) (domain.Outcome, error) {
	p, err := h.player(user)
	if err != nil {
		return domain.Outcome{}, err
	}
	if p.session == nil {
		return domain.Outcome{}, fmt.Errorf("drag as %q: %w", user, ErrNoOpenSession)
	}
	if h.handler == nil {
		return domain.Outcome{}, ErrNoHandler
	}
	if p.cursor.IsEmpty() {
		return domain.Outcome{}, fmt.Errorf("drag as %q: cursor is empty", user)
	}

	total := 0
	items := make(map[int]domain.ItemStack, len(amounts))
	for index, amount := range amounts {
		if amount <= 0 {
			continue
		}
		items[index] = p.cursor.WithAmount(amount)
		total += amount
	}
	if total > p.cursor.Amount {
		return domain.Outcome{}, fmt.Errorf("drag of %d items exceeds cursor of %d", total, p.cursor.Amount)
	}

	out := h.handler.HandleDrag(ctx, domain.DragEvent{
		User:      user,
		Container: p.session.Container,
		Cursor:    p.cursor,
		NewItems:  items,
	})
	if out.Suppress {
		return out, nil
	}

	size := p.session.Container.Size()
	indexes := make([]int, 0, len(items))
	for index := range items {
		indexes = append(indexes, index)
	}
	slices.Sort(indexes)

	moved := 0
	for _, index := range indexes {
		target, slot := p.session.Container, index
		if index >= size {
			target, slot = p.inventory, index-size
		}
		moved += mergeInto(target, slot, items[index])
	}
	p.cursor = p.cursor.WithAmount(p.cursor.Amount - moved)

	return out, nil
}

func applyClick(p *player, clicked, other *domain.Container, slot int, action domain.ClickAction) {
	current := clicked.Item(slot)

	switch action {
	case domain.ActionPickupAll, domain.ActionPickupSome:
		if p.cursor.IsEmpty() {
			p.cursor = current
			clicked.Clear(slot)
		}
	case domain.ActionPickupHalf:
		if p.cursor.IsEmpty() && !current.IsEmpty() {
			half := (current.Amount + 1) / 2
			p.cursor = current.WithAmount(half)
			clicked.SetItem(slot, current.WithAmount(current.Amount-half))
		}
	case domain.ActionPickupOne:
		if !current.IsEmpty() && (p.cursor.IsEmpty() || p.cursor.IsSimilar(current)) {
			p.cursor = current.WithAmount(p.cursor.Amount + 1)
			clicked.SetItem(slot, current.WithAmount(current.Amount-1))
		}
	case domain.ActionPlaceAll, domain.ActionPlaceSome:
		moved := mergeInto(clicked, slot, p.cursor)
		p.cursor = p.cursor.WithAmount(p.cursor.Amount - moved)
	case domain.ActionPlaceOne:
		moved := mergeInto(clicked, slot, p.cursor.WithAmount(min(1, p.cursor.Amount)))
		p.cursor = p.cursor.WithAmount(p.cursor.Amount - moved)
	case domain.ActionSwapWithCursor:
		clicked.SetItem(slot, p.cursor)
		p.cursor = current
	case domain.ActionMoveToOtherInventory:
		if current.IsEmpty() {
			return
		}
		remaining := current.Amount
		for _, pass := range []bool{true, false} {
			for target := 0; target < other.Size() && remaining > 0; target++ {
				existing := other.Item(target)
				if existing.IsEmpty() == pass {
					continue
				}
				remaining -= mergeInto(other, target, current.WithAmount(remaining))
			}
		}
		clicked.SetItem(slot, current.WithAmount(remaining))
	case domain.ActionDropOne:
		clicked.SetItem(slot, current.WithAmount(current.Amount-1))
	case domain.ActionDropAll:
		clicked.Clear(slot)
	}
}

// mergeInto adds stack to slot up to the vanilla stack size and returns how many items moved.
func mergeInto(container *domain.Container, slot int, stack domain.ItemStack) int {
	if stack.IsEmpty() || !container.InBounds(slot) {
		return 0
	}

	existing := container.Item(slot)
	if existing.IsEmpty() {
		moved := min(stack.Amount, vanillaMaxSize)
		container.SetItem(slot, stack.WithAmount(moved))
		return moved
	}
	if !existing.IsSimilar(stack) {
		return 0
	}

	moved := min(stack.Amount, vanillaMaxSize-existing.Amount)
	if moved <= 0 {
		return 0
	}
	container.SetItem(slot, existing.WithAmount(existing.Amount+moved))
	return moved
}
