package theme

import "fmt"

// Mode is the light/dark preference.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Brightness adjusts the rendered intensity on top of the mode.
type Brightness string

const (
	BrightnessDim    Brightness = "dim"
	BrightnessNormal Brightness = "normal"
	BrightnessBright Brightness = "bright"
)

// Factor returns the brightness multiplier applied to the UI root.
func (b Brightness) Factor() float64 {
	switch b {
	case BrightnessDim:
		return 0.85
	case BrightnessBright:
		return 1.1
	default:
		return 1.0
	}
}

// Preference is the persisted theme state.
type Preference struct {
	Mode       Mode       `json:"mode"`
	Brightness Brightness `json:"brightness"`
}

// DefaultPreference is what a fresh or unreadable store falls back to.
func DefaultPreference() Preference {
	return Preference{Mode: ModeDark, Brightness: BrightnessNormal}
}

func (p Preference) valid() bool {
	modeOK := p.Mode == ModeLight || p.Mode == ModeDark
	brightnessOK := p.Brightness == BrightnessDim || p.Brightness == BrightnessNormal || p.Brightness == BrightnessBright
	return modeOK && brightnessOK
}

// ParseMode validates user input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid theme '%s': must be light or dark", s)
}

// ParseBrightness validates user input.
func ParseBrightness(s string) (Brightness, error) {
	switch Brightness(s) {
	case BrightnessDim, BrightnessNormal, BrightnessBright:
		return Brightness(s), nil
	}
	return "", fmt.Errorf("invalid brightness '%s': must be dim, normal, or bright", s)
}
