package container

import (
	"fmt"
	"strings"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	slotsPerRow = 9
	barWidth    = 24
)

type SlotView struct {
	Index int
	Kind  domain.RoleKind
	Tag   domain.RoleTag
	Item  domain.ItemStack
}

// GroupView reports how full one slot group is.
type GroupView struct {
	Tag      domain.RoleTag
	Used     int
	Capacity int
}

type Snapshot struct {
	Title   string
	Key     domain.GuiKey
	Rows    int
	Slots   []SlotView
	Groups  []GroupView
	Cursor  domain.ItemStack
	Balance *float64
	Notices []string
	// Rejections lists the rejections seen since the previous snapshot.
	Rejections []string
}

type Summary struct {
	Key     domain.GuiKey
	Title   string
	Rows    int
	Mapped  int
	Special int
	Buttons int
}

func renderSnapshot(snap Snapshot, s styles) string {
	title := snap.Title
	if title == "" {
		title = string(snap.Key)
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("gui: %s  rows: %d  variant: %s", snap.Key, snap.Rows, snap.Key.Variant())),
	}

	lines = append(lines, s.section.Render(renderGrid(snap, s)))
	lines = append(lines, s.legend.Render("[B] button  [#] filler  [*] special  [ ] storage"))

	if len(snap.Groups) > 0 {
		groupLines := make([]string, 0, len(snap.Groups))
		for _, group := range snap.Groups {
			groupLines = append(groupLines, groupLine(group, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, groupLines...)))
	}

	footer := []string{fmt.Sprintf("cursor: %s", stackLabel(snap.Cursor))}
	if snap.Balance != nil {
		footer = append(footer, fmt.Sprintf("balance: %.2f", *snap.Balance))
	}
	lines = append(lines, s.section.Render(s.header.Render(strings.Join(footer, "  "))))

	for _, notice := range snap.Notices {
		lines = append(lines, s.notice.Render("> "+notice))
	}
	for _, rejection := range snap.Rejections {
		lines = append(lines, s.rejected.Render("x "+rejection))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGrid(snap Snapshot, s styles) string {
	rows := snap.Rows
	if rows <= 0 {
		rows = (len(snap.Slots) + slotsPerRow - 1) / slotsPerRow
	}

	bySlot := make(map[int]SlotView, len(snap.Slots))
	for _, slot := range snap.Slots {
		bySlot[slot.Index] = slot
	}

	gridRows := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, slotsPerRow)
		for col := 0; col < slotsPerRow; col++ {
			index := row*slotsPerRow + col
			cells = append(cells, renderCell(bySlot[index], s))
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, gridRows...)
}

func renderCell(slot SlotView, s styles) string {
	switch slot.Kind {
	case domain.RoleButton:
		return s.button.Render("[B]")
	case domain.RoleFiller:
		return s.filler.Render("[#]")
	case domain.RoleSpecialSlot:
		if slot.Item.IsEmpty() {
			return s.special.Render("[*]")
		}
		return s.special.Render(shortStack(slot.Item))
	default:
		if slot.Item.IsEmpty() {
			return s.storage.Render("[ ]")
		}
		return s.storage.Render(shortStack(slot.Item))
	}
}

func groupLine(group GroupView, s styles) string {
	percent := 0.0
	if group.Capacity > 0 {
		percent = float64(group.Used) / float64(group.Capacity)
	}
	if percent > 1 {
		percent = 1
	}

	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
		progress.WithSolidFill(string(fillColor(percent))),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.groupKey.Render(fmt.Sprintf("%-16s", group.Tag)),
		" ",
		bar.ViewAs(percent),
		" ",
		s.legend.Render(fmt.Sprintf("%d/%d", group.Used, group.Capacity)),
	)
}

func renderList(guis []Summary, s styles) string {
	lines := []string{
		s.title.Render("Managed GUIs"),
		s.header.Render(fmt.Sprintf("guis: %d", len(guis))),
	}

	if len(guis) == 0 {
		lines = append(lines, s.empty.Render("No GUIs configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, gui := range guis {
		lines = append(lines, fmt.Sprintf("%s %s",
			s.groupKey.Render(fmt.Sprintf("%-16s", gui.Key)),
			s.legend.Render(fmt.Sprintf("%q rows=%d mapped=%d special=%d buttons=%d",
				gui.Title, gui.Rows, gui.Mapped, gui.Special, gui.Buttons)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func shortStack(stack domain.ItemStack) string {
	label := stack.Label()
	if len(label) > 3 {
		label = label[:3]
	}
	return fmt.Sprintf("%s%d", label, stack.Amount)
}

func stackLabel(stack domain.ItemStack) string {
	if stack.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s x%d", stack.Label(), stack.Amount)
}

// fillColor shades from green when a group is empty to red when it is full.
func fillColor(fraction float64) lipgloss.Color {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	r := int(80 + fraction*175)
	g := int(220 - fraction*150)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, 90))
}
