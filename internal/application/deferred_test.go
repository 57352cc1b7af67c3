package application

import (
	"context"
	"testing"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorCorrectionUsesLatestPendingCursor(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.cursors.stacks[testUser] = ruby(10)
	engine := h.build(t)

	engine.HandleClick(context.Background(), placeClick(h, 7, domain.ActionPlaceOne, ruby(10)))
	engine.HandleClick(context.Background(), placeClick(h, 7, domain.ActionPlaceOne, ruby(10)))
	require.True(t, engine.PendingCorrection(testUser, testContainer))

	h.sched.tick()

	assert.Equal(t, ruby(2), h.container.Item(7))
	assert.Equal(t, ruby(8), h.cursors.stacks[testUser])
	assert.Equal(t, 1, h.cursors.sets)
	assert.False(t, engine.PendingCorrection(testUser, testContainer))
}

func TestDisconnectCancelsCursorCorrection(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.cursors.stacks[testUser] = ruby(10)
	engine := h.build(t)

	engine.HandleClick(context.Background(), placeClick(h, 7, domain.ActionPlaceAll, ruby(10)))
	engine.HandleDisconnect(testUser)
	h.sched.tick()

	assert.Zero(t, h.cursors.sets)
	assert.False(t, engine.PendingCorrection(testUser, testContainer))
}

func TestCursorCorrectionSkipsGoneUser(t *testing.T) {
	t.Parallel()

	h := newHarness()
	engine := h.build(t)

	engine.HandleClick(context.Background(), placeClick(h, 7, domain.ActionPlaceAll, ruby(10)))
	h.cursors.online[testUser] = false
	h.sched.tick()

	assert.Zero(t, h.cursors.sets)
}

func TestCloseLeavesCorrectionQueued(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.cursors.stacks[testUser] = ruby(3)
	engine := h.build(t)

	engine.HandleClick(context.Background(), placeClick(h, 7, domain.ActionPlaceAll, ruby(3)))
	engine.HandleClose(context.Background(), domain.CloseEvent{User: testUser, Container: h.container})
	h.sched.tick()

	assert.True(t, h.cursors.stacks[testUser].IsEmpty())
}

func TestClickPassThroughHeldWhileCorrectionPending(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.cursors.stacks[testUser] = ruby(10)
	engine := h.build(t)
	pickup := domain.ClickEvent{
		User:      testUser,
		Container: h.container,
		Slot:      12,
		Action:    domain.ActionPickupAll,
		Click:     domain.ClickLeft,
		Current:   dirt(5),
	}

	engine.HandleClick(context.Background(), placeClick(h, 7, domain.ActionPlaceAll, ruby(10)))
	out := engine.HandleClick(context.Background(), pickup)

	assert.True(t, out.Suppress)
	assert.False(t, out.Rejected())

	h.sched.tick()
	out = engine.HandleClick(context.Background(), pickup)
	assert.False(t, out.Suppress)
}
