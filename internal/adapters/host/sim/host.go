package sim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	InventorySize  = 36
	vanillaMaxSize = 64
)

var (
	ErrUnknownUser   = errors.New("unknown user")
	ErrNoOpenSession = errors.New("no open container")
	ErrNoHandler     = errors.New("host has no interaction handler")
)

// Handler receives the interaction events the host produces.
type Handler interface {
	HandleClick(ctx context.Context, ev domain.ClickEvent) domain.Outcome
	HandleDrag(ctx context.Context, ev domain.DragEvent) domain.Outcome
	HandleClose(ctx context.Context, ev domain.CloseEvent)
	HandleDisconnect(user domain.UserID)
}

// Binder tells the catalogue which GUI an opened container shows.
type Binder interface {
	Bind(user domain.UserID, container domain.ContainerID, key domain.GuiKey) error
	Unbind(user domain.UserID, container domain.ContainerID)
}

type Notice struct {
	Tick    uint64
	User    domain.UserID
	Message string
}

type player struct {
	cursor    domain.ItemStack
	inventory *domain.Container
	session   *domain.ContainerSession
}

// Host is an in-process stand-in for a game server: it owns players, their cursors and open
// containers, and runs deferred work when Tick is called. It is not safe for concurrent use.
type Host struct {
	binder  Binder
	handler Handler
	log     logrus.FieldLogger

	tick    uint64
	queue   []func()
	players map[domain.UserID]*player
	notices []Notice
}

var (
	_ ports.Cursors   = (*Host)(nil)
	_ ports.Notifier  = (*Host)(nil)
	_ ports.Scheduler = (*Host)(nil)
)

func NewHost(binder Binder, logger logrus.FieldLogger) *Host {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Host{binder: binder, log: logger, players: map[domain.UserID]*player{}}
}

// Attach sets the handler. The engine depends on the host, so it is wired after construction.
func (h *Host) Attach(handler Handler) {
	h.handler = handler
}

func (h *Host) Join(user domain.UserID) {
	if _, ok := h.players[user]; ok {
		return
	}
	h.players[user] = &player{inventory: domain.NewContainer(domain.ContainerID("inventory:"+string(user)), InventorySize)}
}

// Leave disconnects the user. Any open container is dropped without a close event.
func (h *Host) Leave(user domain.UserID) {
	p, ok := h.players[user]
	if !ok {
		return
	}
	if h.handler != nil {
		h.handler.HandleDisconnect(user)
	}
	if p.session != nil && h.binder != nil {
		h.binder.Unbind(user, p.session.Container.ID)
	}
	delete(h.players, user)
}

func (h *Host) Open(ctx context.Context, user domain.UserID, key domain.GuiKey, size int) (domain.ContainerSession, error) {
	p, err := h.player(user)
	if err != nil {
		return domain.ContainerSession{}, err
	}
	if p.session != nil {
		h.Close(ctx, user)
	}

	session := &domain.ContainerSession{
		ID:        uuid.New(),
		User:      user,
		Container: domain.NewContainer(domain.ContainerID(uuid.NewString()), size),
		Key:       key,
	}
	if h.binder != nil {
		if err := h.binder.Bind(user, session.Container.ID, key); err != nil {
			return domain.ContainerSession{}, fmt.Errorf("open %q: %w", key, err)
		}
	}
	p.session = session

	h.log.WithFields(logrus.Fields{"user": user, "gui": key, "session": session.ID}).Debug("container opened")
	return *session, nil
}

func (h *Host) Close(ctx context.Context, user domain.UserID) {
	p, ok := h.players[user]
	if !ok || p.session == nil {
		return
	}
	if h.handler != nil {
		h.handler.HandleClose(ctx, domain.CloseEvent{User: user, Container: p.session.Container})
	}
	if h.binder != nil {
		h.binder.Unbind(user, p.session.Container.ID)
	}
	p.session = nil
}

func (h *Host) Session(user domain.UserID) (domain.ContainerSession, bool) {
	p, ok := h.players[user]
	if !ok || p.session == nil {
		return domain.ContainerSession{}, false
	}
	return *p.session, true
}

func (h *Host) Inventory(user domain.UserID) (*domain.Container, error) {
	p, err := h.player(user)
	if err != nil {
		return nil, err
	}
	return p.inventory, nil
}

func (h *Host) Cursor(user domain.UserID) (domain.ItemStack, bool) {
	p, ok := h.players[user]
	if !ok {
		return domain.ItemStack{}, false
	}
	return p.cursor, true
}

func (h *Host) SetCursor(user domain.UserID, stack domain.ItemStack) bool {
	p, ok := h.players[user]
	if !ok {
		return false
	}
	if stack.IsEmpty() {
		stack = domain.ItemStack{}
	}
	p.cursor = stack
	return true
}

func (h *Host) Notify(user domain.UserID, message string) {
	h.notices = append(h.notices, Notice{Tick: h.tick, User: user, Message: message})
}

func (h *Host) RunNextTick(fn func()) {
	h.queue = append(h.queue, fn)
}

// Tick advances one scheduler pass and runs the work queued before it started.
func (h *Host) Tick() int {
	queue := h.queue
	h.queue = nil
	for _, fn := range queue {
		fn()
	}
	h.tick++
	return len(queue)
}

func (h *Host) CurrentTick() uint64 {
	return h.tick
}

func (h *Host) Pending() int {
	return len(h.queue)
}

// DrainNotices returns and forgets the notices sent so far.
func (h *Host) DrainNotices() []Notice {
	out := h.notices
	h.notices = nil
	return out
}

func (h *Host) player(user domain.UserID) (*player, error) {
	p, ok := h.players[user]
	if !ok {
		return nil, fmt.Errorf("player %q: %w", user, ErrUnknownUser)
	}
	return p, nil
}
