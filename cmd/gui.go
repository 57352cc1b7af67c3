package cmd

import (
	"fmt"
	"slices"

	catalogue "github.com/bnema/slotguard/internal/adapters/catalogue/toml"
	"github.com/bnema/slotguard/internal/adapters/render/container"
	"github.com/bnema/slotguard/internal/application"
	"github.com/bnema/slotguard/internal/domain"
	"github.com/spf13/cobra"
)

const defaultMaxAmount = 64

func newGuiCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Inspect the GUI catalogue",
	}

	cmd.AddCommand(newGuiListCmd(app), newGuiShowCmd(app))
	return cmd
}

func newGuiListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed GUIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			guis := app.catalogue.List()
			summaries := make([]container.Summary, 0, len(guis))
			for _, gui := range guis {
				summaries = append(summaries, summaryOf(gui))
			}

			rendered, err := app.renderList(summaries)
			if err != nil {
				return fmt.Errorf("render gui list: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newGuiShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <gui>",
		Short: "Show the slot layout of one GUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gui, err := app.catalogue.Get(domain.GuiKey(args[0]))
			if err != nil {
				return err
			}

			rendered, err := app.render(snapshotOf(gui, nil))
			if err != nil {
				return fmt.Errorf("render gui: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func summaryOf(gui catalogue.Gui) container.Summary {
	summary := container.Summary{Key: gui.Key, Title: gui.Title, Rows: gui.Rows, Mapped: len(gui.Slots)}
	for _, slot := range gui.Slots {
		switch slot.Role.KindOf() {
		case domain.RoleSpecialSlot:
			summary.Special++
		case domain.RoleButton:
			summary.Buttons++
		}
	}
	return summary
}

// snapshotOf lays gui's roles over contents. A nil container shows the empty layout.
func snapshotOf(gui catalogue.Gui, contents *domain.Container) container.Snapshot {
	if contents == nil {
		contents = domain.NewContainer("preview", gui.Size())
	}

	snap := container.Snapshot{Title: gui.Title, Key: gui.Key, Rows: gui.Rows}
	for index := range gui.Size() {
		view := container.SlotView{Index: index, Kind: domain.RolePlainStorage, Item: contents.Item(index)}
		if slot, ok := gui.Slots[index]; ok {
			view.Tag = slot.Role
			view.Kind = slot.Role.KindOf()
		}
		snap.Slots = append(snap.Slots, view)
	}

	tags := make([]domain.RoleTag, 0, len(gui.Groups))
	for tag := range gui.Groups {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	for _, tag := range tags {
		slots := gui.Groups[tag]
		if len(slots) == 0 {
			continue
		}
		perSlot := defaultMaxAmount
		if slot, ok := gui.Slots[slots[0]]; ok && slot.MaxAmount > 0 {
			perSlot = slot.MaxAmount
		}
		snap.Groups = append(snap.Groups, container.GroupView{
			Tag:      tag,
			Used:     application.TotalOccupancy(contents, slots),
			Capacity: perSlot * len(slots),
		})
	}

	return snap
}
