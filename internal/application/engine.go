package application

import (
	"errors"
	"io"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	"github.com/sirupsen/logrus"
)

var (
	errNilCatalogue = errors.New("catalogue is nil")
	errNilActions   = errors.New("button actions are nil")
	errNilRegistry  = errors.New("item registry is nil")
	errNilLedger    = errors.New("ledger is nil")
	errNilCursors   = errors.New("cursor holder is nil")
	errNilScheduler = errors.New("scheduler is nil")
)

type Deps struct {
	Catalogue ports.Catalogue
	Actions   ports.ButtonActions
	Registry  ports.ItemRegistry
	Ledger    ports.Ledger
	Pages     ports.PagePersistence
	Cursors   ports.Cursors
	Notifier  ports.Notifier
	Scheduler ports.Scheduler
	Logger    logrus.FieldLogger
}

// Engine validates and executes item movements into managed containers. It is driven by one host
// execution context and holds no locks.
type Engine struct {
	catalogue ports.Catalogue
	actions   ports.ButtonActions
	registry  ports.ItemRegistry
	ledger    ports.Ledger
	pages     ports.PagePersistence
	cursors   ports.Cursors
	notifier  ports.Notifier
	log       logrus.FieldLogger

	deferred      *deferredTasks
	pendingCursor map[domain.SessionKey]domain.ItemStack
}

func NewEngine(deps Deps) (*Engine, error) {
	switch {
	case deps.Catalogue == nil:
		return nil, errNilCatalogue
	case deps.Actions == nil:
		return nil, errNilActions
	case deps.Registry == nil:
		return nil, errNilRegistry
	case deps.Ledger == nil:
		return nil, errNilLedger
	case deps.Cursors == nil:
		return nil, errNilCursors
	case deps.Scheduler == nil:
		return nil, errNilScheduler
	}

	logger := deps.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	notifier := deps.Notifier
	if notifier == nil {
		notifier = silentNotifier{}
	}

	return &Engine{
		catalogue:     deps.Catalogue,
		actions:       deps.Actions,
		registry:      deps.Registry,
		ledger:        deps.Ledger,
		pages:         deps.Pages,
		cursors:       deps.Cursors,
		notifier:      notifier,
		log:           logger,
		deferred:      newDeferredTasks(deps.Scheduler),
		pendingCursor: map[domain.SessionKey]domain.ItemStack{},
	}, nil
}

func (e *Engine) reject(user domain.UserID, key domain.GuiKey, shape Shape, rejection *domain.Rejection) domain.Outcome {
	if rejection.Notice != "" {
		e.notifier.Notify(user, rejection.Notice)
	}

	e.log.WithFields(logrus.Fields{
		"user":  user,
		"gui":   key,
		"slot":  rejection.Slot,
		"shape": shape,
	}).WithError(rejection.Kind).Debug("interaction rejected")

	return domain.Outcome{Handled: true, Suppress: true, Rejection: rejection}
}

func suppressed() domain.Outcome {
	return domain.Outcome{Handled: true, Suppress: true}
}

func passThrough() domain.Outcome {
	return domain.Outcome{Handled: true}
}

type silentNotifier struct{}

func (silentNotifier) Notify(domain.UserID, string) {}
