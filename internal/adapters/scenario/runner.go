package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/slotguard/internal/adapters/host/sim"
	"github.com/bnema/slotguard/internal/domain"
)

type ItemSource interface {
	Stack(id domain.ItemIdentity, amount int) (domain.ItemStack, error)
}

type Funds interface {
	Deposit(ctx context.Context, user domain.UserID, amount float64) error
	Balance(ctx context.Context, user domain.UserID) (float64, error)
}

// Env is what a scenario runs against. Size reports the slot count of a GUI and Invoked the
// buttons pressed so far, in order.
type Env struct {
	Host    *sim.Host
	Items   ItemSource
	Funds   Funds
	Size    func(domain.GuiKey) (int, error)
	Invoked func() []domain.RoleTag
}

type StepResult struct {
	Index       int
	Description string
	Outcome     domain.Outcome
	Notices     []string
	Failures    []string
}

type Report struct {
	Scenario string
	Session  domain.ContainerSession
	Steps    []StepResult
	Failures []string
}

func (r Report) Passed() bool {
	if len(r.Failures) > 0 {
		return false
	}
	for _, step := range r.Steps {
		if len(step.Failures) > 0 {
			return false
		}
	}
	return true
}

// Run plays the scenario. Failed expectations land in the report; setup and host errors abort the
// run.
func Run(ctx context.Context, env Env, s Scenario) (Report, error) {
	if env.Host == nil || env.Items == nil || env.Funds == nil || env.Size == nil {
		return Report{}, errors.New("scenario environment is incomplete")
	}

	report := Report{Scenario: s.Name}
	user := s.User
	env.Host.Join(user)

	if s.Balance > 0 {
		if err := env.Funds.Deposit(ctx, user, s.Balance); err != nil {
			return report, fmt.Errorf("fund %q: %w", user, err)
		}
	}

	inventory, err := env.Host.Inventory(user)
	if err != nil {
		return report, err
	}
	if err := fill(env.Items, inventory, s.Inventory); err != nil {
		return report, fmt.Errorf("fill inventory: %w", err)
	}

	size, err := env.Size(s.Gui)
	if err != nil {
		return report, err
	}
	session, err := env.Host.Open(ctx, user, s.Gui, size)
	if err != nil {
		return report, err
	}
	report.Session = session
	if err := fill(env.Items, session.Container, s.Container); err != nil {
		return report, fmt.Errorf("fill container: %w", err)
	}

	if s.Cursor != nil {
		stack, err := toStack(env.Items, *s.Cursor)
		if err != nil {
			return report, fmt.Errorf("set cursor: %w", err)
		}
		env.Host.SetCursor(user, stack)
	}

	var allNotices []string
	for i, step := range s.Steps {
		result := StepResult{Index: i + 1, Description: step.Describe()}

		out, err := runStep(ctx, env, user, step)
		if err != nil {
			return report, fmt.Errorf("step %d (%s): %w", i+1, result.Description, err)
		}
		result.Outcome = out

		for _, notice := range env.Host.DrainNotices() {
			result.Notices = append(result.Notices, notice.Message)
		}
		allNotices = append(allNotices, result.Notices...)

		if step.Expect != nil {
			result.Failures = check(ctx, env, user, session.Container, *step.Expect, &out, result.Notices)
		}
		report.Steps = append(report.Steps, result)
	}

	if s.Expect != nil {
		report.Failures = check(ctx, env, user, session.Container, *s.Expect, nil, allNotices)
	}

	return report, nil
}

func runStep(ctx context.Context, env Env, user domain.UserID, step Step) (domain.Outcome, error) {
	host := env.Host

	switch {
	case step.Click != nil:
		action, _ := parseAction(step.Click.Action)
		clickType, _ := parseType(step.Click.Type)
		return host.Click(ctx, user, sim.Click{Top: !step.Click.Bottom, Slot: step.Click.Slot, Action: action, Type: clickType})
	case step.Shift != nil:
		return host.Click(ctx, user, sim.Click{Slot: step.Shift.Slot, Action: domain.ActionMoveToOtherInventory, Type: domain.ClickShiftLeft})
	case len(step.Drag) > 0:
		return host.Drag(ctx, user, step.Drag)
	case step.Tick > 0:
		for range step.Tick {
			host.Tick()
		}
	case step.Cursor != nil:
		stack, err := toStack(env.Items, *step.Cursor)
		if err != nil {
			return domain.Outcome{}, err
		}
		host.SetCursor(user, stack)
	case step.Close:
		host.Close(ctx, user)
	case step.Leave:
		host.Leave(user)
	}

	return domain.Outcome{}, nil
}

func check(ctx context.Context, env Env, user domain.UserID, container *domain.Container, want Expectation, out *domain.Outcome, notices []string) []string {
	var failures []string

	if want.Rejected != "" && out != nil {
		kind, _ := RejectionKind(want.Rejected)
		switch {
		case kind == nil && out.Rejected():
			failures = append(failures, fmt.Sprintf("unexpected rejection: %v", out.Rejection))
		case kind != nil && !out.Rejected():
			failures = append(failures, fmt.Sprintf("expected %s rejection, interaction went through", want.Rejected))
		case kind != nil && !errors.Is(out.Rejection, kind):
			failures = append(failures, fmt.Sprintf("expected %s rejection, got %v", want.Rejected, out.Rejection))
		}
	}

	failures = append(failures, compareSlots("slot", container, want.Slots)...)
	if len(want.Inventory) > 0 {
		inventory, err := env.Host.Inventory(user)
		if err != nil {
			failures = append(failures, err.Error())
		} else {
			failures = append(failures, compareSlots("inventory slot", inventory, want.Inventory)...)
		}
	}

	if want.Cursor != nil {
		cursor, _ := env.Host.Cursor(user)
		if !matches(cursor, want.Cursor) {
			failures = append(failures, fmt.Sprintf("cursor: want %s, got %s", describe(want.Cursor), label(cursor)))
		}
	}

	if want.Balance != nil {
		balance, err := env.Funds.Balance(ctx, user)
		if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			failures = append(failures, fmt.Sprintf("balance: %v", err))
		} else if diff := balance - *want.Balance; diff > 0.001 || diff < -0.001 {
			failures = append(failures, fmt.Sprintf("balance: want %.2f, got %.2f", *want.Balance, balance))
		}
	}

	if want.Notice != "" && !slices.ContainsFunc(notices, func(n string) bool { return strings.Contains(n, want.Notice) }) {
		failures = append(failures, fmt.Sprintf("no notice containing %q", want.Notice))
	}

	if len(want.Invoked) > 0 && env.Invoked != nil {
		got := make([]string, 0)
		for _, tag := range env.Invoked() {
			got = append(got, string(tag))
		}
		if !slices.Equal(got, want.Invoked) {
			failures = append(failures, fmt.Sprintf("buttons: want %v, got %v", want.Invoked, got))
		}
	}

	return failures
}

func compareSlots(what string, container *domain.Container, want map[int]*Stack) []string {
	slots := make([]int, 0, len(want))
	for slot := range want {
		slots = append(slots, slot)
	}
	slices.Sort(slots)

	var failures []string
	for _, slot := range slots {
		got := container.Item(slot)
		if !matches(got, want[slot]) {
			failures = append(failures, fmt.Sprintf("%s %d: want %s, got %s", what, slot, describe(want[slot]), label(got)))
		}
	}
	return failures
}

func matches(got domain.ItemStack, want *Stack) bool {
	if want == nil || want.Amount <= 0 {
		return got.IsEmpty()
	}
	return got.Tag == string(want.Item) && got.Amount == want.Amount
}

func describe(want *Stack) string {
	if want == nil || want.Amount <= 0 {
		return "empty"
	}
	return fmt.Sprintf("%s x%d", want.Item, want.Amount)
}

func label(stack domain.ItemStack) string {
	if stack.IsEmpty() {
		return "empty"
	}
	id := stack.Tag
	if id == "" {
		id = stack.Material
	}
	return fmt.Sprintf("%s x%d", id, stack.Amount)
}

func fill(items ItemSource, container *domain.Container, stacks []SlotStack) error {
	for _, entry := range stacks {
		if !container.InBounds(entry.Slot) {
			return fmt.Errorf("slot %d out of range", entry.Slot)
		}
		stack, err := toStack(items, entry.Stack)
		if err != nil {
			return err
		}
		container.SetItem(entry.Slot, stack)
	}
	return nil
}

func toStack(items ItemSource, want Stack) (domain.ItemStack, error) {
	if want.Amount <= 0 {
		return domain.ItemStack{}, nil
	}
	return items.Stack(want.Item, want.Amount)
}
