package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"sync"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	"github.com/sirupsen/logrus"
)

var ErrUnboundButton = errors.New("no action bound to button")

type Request struct {
	User     domain.UserID
	Gui      domain.GuiKey
	Button   domain.RoleTag
	Consumed map[int]domain.ItemStack
}

// Total sums the consumed item counts.
func (r Request) Total() int {
	total := 0
	for _, stack := range r.Consumed {
		total += stack.Amount
	}
	return total
}

type Func func(ctx context.Context, req Request) error

// Registry dispatches button presses to functions bound per button tag. Every press is kept in the
// history, bound or not.
type Registry struct {
	mu       sync.Mutex
	funcs    map[domain.RoleTag]Func
	fallback Func
	history  []Request
	log      logrus.FieldLogger
}

var _ ports.ButtonActions = (*Registry)(nil)

func NewRegistry(logger logrus.FieldLogger) *Registry {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Registry{funcs: map[domain.RoleTag]Func{}, log: logger}
}

func (r *Registry) Bind(tag domain.RoleTag, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[tag] = fn
}

// Fallback handles buttons without a bound function.
func (r *Registry) Fallback(fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = fn
}

func (r *Registry) Invoke(ctx context.Context, user domain.UserID, key domain.GuiKey, tag domain.RoleTag, consumed map[int]domain.ItemStack) error {
	req := Request{User: user, Gui: key, Button: tag, Consumed: maps.Clone(consumed)}

	r.mu.Lock()
	r.history = append(r.history, req)
	fn, ok := r.funcs[tag]
	if !ok {
		fn = r.fallback
	}
	r.mu.Unlock()

	entry := r.log.WithFields(logrus.Fields{"user": user, "gui": key, "button": tag, "consumed": req.Total()})
	if fn == nil {
		entry.Warn("button pressed without action")
		return fmt.Errorf("invoke %q: %w", tag, ErrUnboundButton)
	}

	if err := fn(ctx, req); err != nil {
		return fmt.Errorf("invoke %q: %w", tag, err)
	}
	entry.Info("button action ran")
	return nil
}

func (r *Registry) History() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Request, len(r.history))
	copy(out, r.history)
	return out
}
