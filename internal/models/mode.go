package models

// Mode is the stylistic category of a generated image.
type Mode string

const (
	ModeShame  Mode = "shame"
	ModeToned  Mode = "toned"
	ModeRipped Mode = "ripped"
	ModeFurry  Mode = "furry"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeShame, ModeToned, ModeRipped, ModeFurry}

// ParseMode returns the mode named by s and whether it is one of the supported modes.
// Matching is exact: "Shame" is not a mode.
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	switch m {
	case ModeShame, ModeToned, ModeRipped, ModeFurry:
		return m, true
	default:
		return "", false
	}
}

// ResolveMode is total over its inputs. An explicit mode wins (unrecognized values
// fall back to toned); otherwise the legacy anti-motivation flag selects shame;
// otherwise female users get toned and everyone else ripped.
func ResolveMode(raw string, legacyAntiMotivation bool, gender Gender) Mode {
	if raw != "" {
		if m, ok := ParseMode(raw); ok {
			return m
		}
		return ModeToned
	}
	if legacyAntiMotivation {
		return ModeShame
	}
	if gender == GenderFemale {
		return ModeToned
	}
	return ModeRipped
}
