package application

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bnema/slotguard/internal/domain"
)

// TotalOccupancy sums the item counts held in slots.
func TotalOccupancy(container *domain.Container, slots []int) int {
	total := 0
	for _, slot := range slots {
		total += container.Item(slot).Amount
	}
	return total
}

// Distribute fills targets in order, each up to perSlotMax, from source and returns what did not fit.
// A target holding a dissimilar stack counts as full.
func Distribute(container *domain.Container, source domain.ItemStack, targets []int, perSlotMax int) int {
	return DistributeBounded(container, source, targets, uniformLimit(perSlotMax))
}

// DistributeBounded is Distribute with a limit looked up per target slot.
func DistributeBounded(container *domain.Container, source domain.ItemStack, targets []int, limit func(slot int) int) int {
	if source.IsEmpty() {
		return 0
	}

	remaining := source.Amount
	for _, slot := range targets {
		if remaining == 0 {
			break
		}
		if !container.InBounds(slot) {
			continue
		}

		result, moved := fill(container.Item(slot), source.WithAmount(remaining), limit(slot))
		if moved == 0 {
			continue
		}
		container.SetItem(slot, result)
		remaining -= moved
	}

	return remaining
}

func fill(existing, source domain.ItemStack, perSlotMax int) (domain.ItemStack, int) {
	if source.IsEmpty() || perSlotMax <= 0 {
		return existing, 0
	}
	if existing.IsEmpty() {
		moved := min(source.Amount, perSlotMax)
		return source.WithAmount(moved), moved
	}
	if !existing.IsSimilar(source) || existing.Amount >= perSlotMax {
		return existing, 0
	}

	moved := min(source.Amount, perSlotMax-existing.Amount)
	return existing.WithAmount(existing.Amount + moved), moved
}

func capacityOf(slots []int, limit func(slot int) int) int {
	capacity := 0
	for _, slot := range slots {
		capacity += limit(slot)
	}
	return capacity
}

func uniformLimit(perSlotMax int) func(int) int {
	return func(int) int { return perSlotMax }
}

func inBounds(container *domain.Container, slots []int) []int {
	out := make([]int, 0, len(slots))
	for _, slot := range slots {
		if container.InBounds(slot) && !slices.Contains(out, slot) {
			out = append(out, slot)
		}
	}
	return out
}

func groupID(slots []int) string {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		parts = append(parts, strconv.Itoa(slot))
	}
	return strings.Join(parts, ",")
}
