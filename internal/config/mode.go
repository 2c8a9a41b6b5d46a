package config

import "fmt"

// Mode is a named rule set.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeHard   Mode = "hard"
	// ModeVariant defers to the variant's hard_mode setting.
	ModeVariant Mode = "variant"
)

// ParseMode accepts the names above; the empty string means ModeVariant.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeVariant, nil
	case ModeNormal, ModeHard, ModeVariant:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("config: unknown mode %q (want normal, hard or variant)", s)
	}
}

// HardFor resolves whether hard mode applies to v.
func (m Mode) HardFor(v Variant) bool {
	switch m {
	case ModeHard:
		return true
	case ModeNormal:
		return false
	default:
		return v.HardMode
	}
}
