package application

import (
	"testing"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistributeNeverExceedsGroupCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		existing  map[int]domain.ItemStack
		source    domain.ItemStack
		max       int
		remainder int
	}{
		{name: "empty group", source: ruby(100), max: 64, remainder: 0},
		{name: "overflow", source: ruby(200), max: 64, remainder: 72},
		{name: "partially filled", existing: map[int]domain.ItemStack{1: ruby(63)}, source: ruby(70), max: 64, remainder: 5},
		{name: "dissimilar occupant", existing: map[int]domain.ItemStack{0: sapphire(1)}, source: ruby(70), max: 64, remainder: 6},
		{name: "small max", source: ruby(5), max: 1, remainder: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			container := domain.NewContainer("c", 9)
			for slot, stack := range tt.existing {
				container.SetItem(slot, stack)
			}
			group := []int{0, 1}

			remainder := Distribute(container, tt.source, group, tt.max)

			assert.Equal(t, tt.remainder, remainder)
			for _, slot := range group {
				assert.LessOrEqual(t, container.Item(slot).Amount, tt.max)
			}
			assert.LessOrEqual(t, TotalOccupancy(container, group), capacityOf(group, uniformLimit(tt.max)))
		})
	}
}

func TestDistributeSkipsOutOfBoundsSlots(t *testing.T) {
	t.Parallel()

	container := domain.NewContainer("c", 2)
	remainder := Distribute(container, ruby(10), []int{-1, 5, 1}, 64)

	assert.Zero(t, remainder)
	assert.Equal(t, ruby(10), container.Item(1))
}

func TestTotalOccupancyCountsEverySlot(t *testing.T) {
	t.Parallel()

	container := domain.NewContainer("c", 4)
	container.SetItem(0, ruby(3))
	container.SetItem(2, sapphire(7))

	assert.Equal(t, 10, TotalOccupancy(container, []int{0, 1, 2, 3}))
	assert.Zero(t, TotalOccupancy(container, nil))
}

func TestDistributeBoundedHonoursEachSlotLimit(t *testing.T) {
	t.Parallel()

	container := domain.NewContainer("c", 9)
	container.SetItem(2, ruby(7))
	limits := map[int]int{0: 4, 1: 16, 2: 8}
	limit := func(slot int) int { return limits[slot] }
	group := []int{0, 1, 2}

	remainder := DistributeBounded(container, ruby(30), group, limit)

	assert.Equal(t, 9, remainder)
	assert.Equal(t, 4, container.Item(0).Amount)
	assert.Equal(t, 16, container.Item(1).Amount)
	assert.Equal(t, 8, container.Item(2).Amount)
	assert.Equal(t, capacityOf(group, limit), TotalOccupancy(container, group))
}
