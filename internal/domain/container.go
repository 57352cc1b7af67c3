package domain

type UserID string
type ContainerID string

// Container is the visible slot array of one open container instance. The zero ItemStack marks an
// empty slot.
type Container struct {
	ID    ContainerID
	slots []ItemStack
}

func NewContainer(id ContainerID, size int) *Container {
	if size < 0 {
		size = 0
	}
	return &Container{ID: id, slots: make([]ItemStack, size)}
}

func (c *Container) Size() int {
	if c == nil {
		return 0
	}
	return len(c.slots)
}

func (c *Container) InBounds(slot int) bool {
	return slot >= 0 && slot < c.Size()
}

func (c *Container) Item(slot int) ItemStack {
	if !c.InBounds(slot) {
		return ItemStack{}
	}
	return c.slots[slot]
}

func (c *Container) SetItem(slot int, stack ItemStack) {
	if !c.InBounds(slot) {
		return
	}
	if stack.IsEmpty() {
		stack = ItemStack{}
	}
	c.slots[slot] = stack
}

func (c *Container) Clear(slot int) {
	c.SetItem(slot, ItemStack{})
}

func (c *Container) Snapshot() []ItemStack {
	if c == nil {
		return nil
	}
	out := make([]ItemStack, len(c.slots))
	copy(out, c.slots)
	return out
}
