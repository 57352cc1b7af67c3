package domain

import "strings"

type RoleTag string

type RoleKind int

const (
	RolePlainStorage RoleKind = iota
	RoleButton
	RoleFiller
	RoleSpecialSlot
)

const (
	specialSlotSuffix = "_slot"
	fillerPrefix      = "filler"
)

func (k RoleKind) String() string {
	switch k {
	case RoleButton:
		return "button"
	case RoleFiller:
		return "filler"
	case RoleSpecialSlot:
		return "special"
	default:
		return "storage"
	}
}

// SlotRole is derived from catalogue data for a single lookup.
type SlotRole struct {
	Kind     RoleKind
	Tag      RoleTag
	Required ItemIdentity
	// HasRequired is false when a special slot has no item configured.
	HasRequired bool
}

func (t RoleTag) IsSpecial() bool {
	return strings.HasSuffix(string(t), specialSlotSuffix)
}

func (t RoleTag) IsFiller() bool {
	return strings.HasPrefix(strings.ToLower(string(t)), fillerPrefix)
}

// KindOf maps a mapped role tag to its kind. Unmapped slots are plain storage and never reach here.
func (t RoleTag) KindOf() RoleKind {
	switch {
	case t.IsSpecial():
		return RoleSpecialSlot
	case t.IsFiller():
		return RoleFiller
	default:
		return RoleButton
	}
}
