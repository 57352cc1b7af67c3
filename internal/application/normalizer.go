package application

import (
	"slices"

	"github.com/bnema/slotguard/internal/domain"
)

type Shape string

const (
	ShapeShiftTransfer   Shape = "shift_transfer"
	ShapeDirectPlacement Shape = "direct_placement"
	ShapePlain           Shape = "plain"
	ShapeDrag            Shape = "drag"
)

// Interaction is one of ShiftTransfer, DirectPlacement, PlainInteraction or MultiSlotDrag.
type Interaction interface {
	Shape() Shape
}

// ShiftTransfer moves Source from the player's inventory into the managed container.
type ShiftTransfer struct {
	Source domain.ItemStack
}

// DirectPlacement places the cursor stack into one top slot. Limit caps the moved amount when
// positive.
type DirectPlacement struct {
	Slot   int
	Cursor domain.ItemStack
	Limit  int
}

type PlainInteraction struct {
	Slot    int
	Top     bool
	Cursor  domain.ItemStack
	Current domain.ItemStack
}

// MultiSlotDrag holds per-slot drag deltas for top slots only, in ascending slot order.
type MultiSlotDrag struct {
	Slots  []int
	Items  map[int]domain.ItemStack
	Cursor domain.ItemStack
}

func (ShiftTransfer) Shape() Shape    { return ShapeShiftTransfer }
func (DirectPlacement) Shape() Shape  { return ShapeDirectPlacement }
func (PlainInteraction) Shape() Shape { return ShapePlain }
func (MultiSlotDrag) Shape() Shape    { return ShapeDrag }

// Moving returns the part of the cursor this placement tries to move.
func (p DirectPlacement) Moving() domain.ItemStack {
	if p.Limit > 0 && p.Cursor.Amount > p.Limit {
		return p.Cursor.WithAmount(p.Limit)
	}
	return p.Cursor
}

// Total is the number of items the drag spreads across the top slots.
func (d MultiSlotDrag) Total() int {
	total := 0
	for _, slot := range d.Slots {
		total += d.Items[slot].Amount
	}
	return total
}

// UsesHotbarShortcut reports the number-key quick move, which managed containers never honor.
func UsesHotbarShortcut(ev domain.ClickEvent) bool {
	return ev.Click == domain.ClickNumberKey || ev.Action == domain.ActionHotbarSwap
}

func Normalize(ev domain.ClickEvent, cursor domain.ItemStack) Interaction {
	if !ev.ClickedTop && ev.Action == domain.ActionMoveToOtherInventory && !ev.Current.IsEmpty() {
		return ShiftTransfer{Source: ev.Current}
	}

	if ev.ClickedTop && ev.Action.IsPlacement() {
		placement := DirectPlacement{Slot: ev.Slot, Cursor: cursor}
		if ev.Action == domain.ActionPlaceOne {
			placement.Limit = 1
		}
		return placement
	}

	return PlainInteraction{Slot: ev.Slot, Top: ev.ClickedTop, Cursor: cursor, Current: ev.Current}
}

func NormalizeDrag(ev domain.DragEvent, cursor domain.ItemStack) MultiSlotDrag {
	drag := MultiSlotDrag{Items: map[int]domain.ItemStack{}, Cursor: cursor}
	for slot, stack := range ev.NewItems {
		if !ev.Container.InBounds(slot) || stack.IsEmpty() {
			continue
		}
		drag.Slots = append(drag.Slots, slot)
		drag.Items[slot] = stack
	}
	slices.Sort(drag.Slots)
	return drag
}
