package domain

import "strings"

type GuiKey string

type Variant string

const (
	VariantStandard  Variant = "standard"
	VariantEnderlink Variant = "enderlink"

	EnderlinkKey GuiKey = "enderlink"
)

func (k GuiKey) Variant() Variant {
	if strings.EqualFold(strings.TrimSpace(string(k)), string(EnderlinkKey)) {
		return VariantEnderlink
	}
	return VariantStandard
}
