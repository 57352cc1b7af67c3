package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/slotguard/internal/adapters/actions"
	catalogue "github.com/bnema/slotguard/internal/adapters/catalogue/toml"
	"github.com/bnema/slotguard/internal/adapters/host/sim"
	ledger "github.com/bnema/slotguard/internal/adapters/ledger/toml"
	pages "github.com/bnema/slotguard/internal/adapters/pages/toml"
	registry "github.com/bnema/slotguard/internal/adapters/registry/yaml"
	"github.com/bnema/slotguard/internal/adapters/render/container"
	"github.com/bnema/slotguard/internal/application"
	"github.com/bnema/slotguard/internal/config"
	"github.com/bnema/slotguard/internal/domain"
	"github.com/bnema/slotguard/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	cfg        config.Config
	log        logrus.FieldLogger
	catalogue  *catalogue.Catalogue
	items      *registry.Registry
	ledger     *ledger.Ledger
	pages      *pages.Store
	render     func(container.Snapshot) (string, error)
	renderList func([]container.Summary) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Logger(os.Stderr)

	guis, err := catalogue.Load(cfg.CataloguePath, logger)
	if err != nil {
		return nil, fmt.Errorf("wire catalogue: %w", err)
	}

	items, err := registry.Load(cfg.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf("wire item registry: %w", err)
	}

	funds, err := ledger.NewLedger(cfg.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("wire ledger: %w", err)
	}

	return &app{
		cfg:        cfg,
		log:        logger,
		catalogue:  guis,
		items:      items,
		ledger:     funds,
		pages:      pages.NewStore(cfg.PagesPath, guis),
		render:     container.Render,
		renderList: container.RenderList,
	}, nil
}

// simulation is one in-process host with the engine attached to it.
type simulation struct {
	host    *sim.Host
	buttons *actions.Registry
	engine  *application.Engine
}

func (a *app) newSimulation(funds ports.Ledger, store ports.PagePersistence) (*simulation, error) {
	host := sim.NewHost(a.catalogue, a.log)

	buttons := actions.NewRegistry(a.log)
	buttons.Fallback(func(_ context.Context, req actions.Request) error {
		a.log.WithFields(logrus.Fields{
			"user":   req.User,
			"gui":    req.Gui,
			"button": req.Button,
			"items":  req.Total(),
		}).Info("button pressed")
		return nil
	})

	engine, err := application.NewEngine(application.Deps{
		Catalogue: a.catalogue,
		Actions:   buttons,
		Registry:  a.items,
		Ledger:    funds,
		Pages:     store,
		Cursors:   host,
		Notifier:  host,
		Scheduler: host,
		Logger:    a.log,
	})
	if err != nil {
		return nil, fmt.Errorf("wire engine: %w", err)
	}
	host.Attach(engine)

	return &simulation{host: host, buttons: buttons, engine: engine}, nil
}

func (s *simulation) invoked() []domain.RoleTag {
	history := s.buttons.History()
	tags := make([]domain.RoleTag, 0, len(history))
	for _, req := range history {
		tags = append(tags, req.Button)
	}
	return tags
}

func (a *app) guiSize(key domain.GuiKey) (int, error) {
	gui, err := a.catalogue.Get(key)
	if err != nil {
		return 0, err
	}
	return gui.Size(), nil
}
