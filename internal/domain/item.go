package domain

import "strings"

type ItemIdentity string

type ItemStack struct {
	Material string
	Tag      string
	Name     string
	Amount   int
}

func (s ItemStack) IsEmpty() bool {
	return s.Amount <= 0 || strings.TrimSpace(s.Material) == ""
}

// IsSimilar reports whether two stacks can share a slot: every field except Amount matches.
func (s ItemStack) IsSimilar(other ItemStack) bool {
	return s.Material == other.Material && s.Tag == other.Tag && s.Name == other.Name
}

func (s ItemStack) WithAmount(amount int) ItemStack {
	if amount <= 0 {
		return ItemStack{}
	}
	s.Amount = amount
	return s
}

func (s ItemStack) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Tag != "" {
		return s.Tag
	}
	return s.Material
}
