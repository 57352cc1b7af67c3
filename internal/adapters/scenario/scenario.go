package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/slotguard/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

// Scenario scripts one user's session against a GUI.
type Scenario struct {
	Name      string        `yaml:"name"`
	User      domain.UserID `yaml:"user"`
	Gui       domain.GuiKey `yaml:"gui"`
	Balance   float64       `yaml:"balance,omitempty"`
	Inventory []SlotStack   `yaml:"inventory,omitempty"`
	Container []SlotStack   `yaml:"container,omitempty"`
	Cursor    *Stack        `yaml:"cursor,omitempty"`
	Steps     []Step        `yaml:"steps"`
	Expect    *Expectation  `yaml:"expect,omitempty"`
}

type Stack struct {
	Item   domain.ItemIdentity `yaml:"item"`
	Amount int                 `yaml:"amount"`
}

type SlotStack struct {
	Slot  int `yaml:"slot"`
	Stack `yaml:",inline"`
}

type Step struct {
	Click  *ClickStep   `yaml:"click,omitempty"`
	Shift  *ShiftStep   `yaml:"shift,omitempty"`
	Drag   map[int]int  `yaml:"drag,omitempty"`
	Tick   int          `yaml:"tick,omitempty"`
	Cursor *Stack       `yaml:"cursor,omitempty"`
	Close  bool         `yaml:"close,omitempty"`
	Leave  bool         `yaml:"leave,omitempty"`
	Expect *Expectation `yaml:"expect,omitempty"`
}

// ClickStep targets the open container unless Bottom is set.
type ClickStep struct {
	Slot   int    `yaml:"slot"`
	Action string `yaml:"action"`
	Type   string `yaml:"type,omitempty"`
	Bottom bool   `yaml:"bottom,omitempty"`
}

// ShiftStep shift-clicks a slot of the player's inventory into the container.
type ShiftStep struct {
	Slot int `yaml:"slot"`
}

type Expectation struct {
	Rejected  string         `yaml:"rejected,omitempty"`
	Slots     map[int]*Stack `yaml:"slots,omitempty"`
	Inventory map[int]*Stack `yaml:"inventory,omitempty"`
	Cursor    *Stack         `yaml:"cursor,omitempty"`
	Balance   *float64       `yaml:"balance,omitempty"`
	Notice    string         `yaml:"notice,omitempty"`
	Invoked   []string       `yaml:"invoked,omitempty"`
}

var rejectionKinds = map[string]error{
	"unregistered": domain.ErrUnregisteredItem,
	"identity":     domain.ErrIdentityMismatch,
	"capacity":     domain.ErrGroupCapacityExceeded,
	"balance":      domain.ErrInsufficientBalance,
	"binding":      domain.ErrNoSlotBinding,
	"undefined":    domain.ErrUndefinedRequiredItem,
}

// RejectionKind maps a scenario rejection name to its error. "none" maps to nil.
func RejectionKind(name string) (error, bool) {
	if name == "none" {
		return nil, true
	}
	kind, ok := rejectionKinds[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (s Scenario) Validate() error {
	var errs []error
	if strings.TrimSpace(string(s.User)) == "" {
		errs = append(errs, errors.New("scenario user is empty"))
	}
	if strings.TrimSpace(string(s.Gui)) == "" {
		errs = append(errs, errors.New("scenario gui is empty"))
	}
	if s.Balance < 0 {
		errs = append(errs, errors.New("scenario balance is negative"))
	}

	for i, step := range s.Steps {
		if n := step.actions(); n != 1 && !(n == 0 && step.Expect != nil) {
			errs = append(errs, fmt.Errorf("step %d: want exactly one action, got %d", i+1, n))
		}
		if step.Click != nil {
			if _, ok := parseAction(step.Click.Action); !ok {
				errs = append(errs, fmt.Errorf("step %d: unknown click action %q", i+1, step.Click.Action))
			}
			if _, ok := parseType(step.Click.Type); !ok {
				errs = append(errs, fmt.Errorf("step %d: unknown click type %q", i+1, step.Click.Type))
			}
		}
		if step.Expect != nil && step.Expect.Rejected != "" {
			if _, ok := RejectionKind(step.Expect.Rejected); !ok {
				errs = append(errs, fmt.Errorf("step %d: unknown rejection %q", i+1, step.Expect.Rejected))
			}
		}
	}

	return errors.Join(errs...)
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Click != nil, s.Shift != nil, len(s.Drag) > 0, s.Tick > 0, s.Cursor != nil, s.Close, s.Leave} {
		if set {
			n++
		}
	}
	return n
}

// Describe renders the step for reports.
func (s Step) Describe() string {
	switch {
	case s.Click != nil:
		where := "container"
		if s.Click.Bottom {
			where = "inventory"
		}
		return fmt.Sprintf("click %s slot %d (%s)", where, s.Click.Slot, s.Click.Action)
	case s.Shift != nil:
		return fmt.Sprintf("shift inventory slot %d", s.Shift.Slot)
	case len(s.Drag) > 0:
		return fmt.Sprintf("drag over %d slots", len(s.Drag))
	case s.Tick > 0:
		return fmt.Sprintf("tick x%d", s.Tick)
	case s.Cursor != nil:
		return fmt.Sprintf("hold %s x%d", s.Cursor.Item, s.Cursor.Amount)
	case s.Close:
		return "close"
	case s.Leave:
		return "leave"
	default:
		return "check"
	}
}

func parseAction(raw string) (domain.ClickAction, bool) {
	action := domain.ClickAction(strings.ToLower(strings.TrimSpace(raw)))
	switch action {
	case domain.ActionNothing, domain.ActionPickupAll, domain.ActionPickupSome, domain.ActionPickupHalf,
		domain.ActionPickupOne, domain.ActionPlaceAll, domain.ActionPlaceSome, domain.ActionPlaceOne,
		domain.ActionSwapWithCursor, domain.ActionMoveToOtherInventory, domain.ActionHotbarSwap,
		domain.ActionCollectToCursor, domain.ActionDropOne, domain.ActionDropAll:
		return action, true
	default:
		return "", false
	}
}

func parseType(raw string) (domain.ClickType, bool) {
	if strings.TrimSpace(raw) == "" {
		return domain.ClickLeft, true
	}
	clickType := domain.ClickType(strings.ToLower(strings.TrimSpace(raw)))
	switch clickType {
	case domain.ClickLeft, domain.ClickRight, domain.ClickShiftLeft, domain.ClickShiftRight,
		domain.ClickMiddle, domain.ClickDouble, domain.ClickDrop, domain.ClickNumberKey:
		return clickType, true
	default:
		return "", false
	}
}
