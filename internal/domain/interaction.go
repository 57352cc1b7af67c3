package domain

type ClickAction string

const (
	ActionNothing              ClickAction = "nothing"
	ActionPickupAll            ClickAction = "pickup_all"
	ActionPickupSome           ClickAction = "pickup_some"
	ActionPickupHalf           ClickAction = "pickup_half"
	ActionPickupOne            ClickAction = "pickup_one"
	ActionPlaceAll             ClickAction = "place_all"
	ActionPlaceSome            ClickAction = "place_some"
	ActionPlaceOne             ClickAction = "place_one"
	ActionSwapWithCursor       ClickAction = "swap_with_cursor"
	ActionMoveToOtherInventory ClickAction = "move_to_other_inventory"
	ActionHotbarSwap           ClickAction = "hotbar_swap"
	ActionCollectToCursor      ClickAction = "collect_to_cursor"
	ActionDropOne              ClickAction = "drop_one"
	ActionDropAll              ClickAction = "drop_all"
)

func (a ClickAction) IsPlacement() bool {
	switch a {
	case ActionPlaceAll, ActionPlaceSome, ActionPlaceOne, ActionSwapWithCursor:
		return true
	default:
		return false
	}
}

type ClickType string

const (
	ClickLeft       ClickType = "left"
	ClickRight      ClickType = "right"
	ClickShiftLeft  ClickType = "shift_left"
	ClickShiftRight ClickType = "shift_right"
	ClickMiddle     ClickType = "middle"
	ClickDouble     ClickType = "double"
	ClickDrop       ClickType = "drop"
	// ClickNumberKey is the client quick-move to hotbar slot N.
	ClickNumberKey ClickType = "number_key"
)

// ClickEvent is one host-delivered click. Slot is relative to the clicked inventory; ClickedTop
// reports whether that inventory is the managed container.
type ClickEvent struct {
	User       UserID
	Container  *Container
	ClickedTop bool
	Slot       int
	Action     ClickAction
	Click      ClickType
	Cursor     ItemStack
	Current    ItemStack
}

// DragEvent maps raw view indices to the stack each slot receives. Indices at or past the container
// size belong to the player's own inventory.
type DragEvent struct {
	User      UserID
	Container *Container
	Cursor    ItemStack
	NewItems  map[int]ItemStack
}

type CloseEvent struct {
	User      UserID
	Container *Container
}

// Outcome tells the host what to do with the event it delivered.
type Outcome struct {
	Handled  bool
	Suppress bool
	// SetCurrent asks the host to replace the clicked slot's stack with Current.
	SetCurrent bool
	Current    ItemStack
	Rejection  *Rejection
}

func (o Outcome) Rejected() bool {
	return o.Rejection != nil
}
