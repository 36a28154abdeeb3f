package features

import (
	"fmt"
	"strings"
)

// EyeStyle selects how both eyes are drawn. The 3D renderer knows normal, star, heart,
// wink, closed and surprised; the 2D canvas knows normal and happy. Each renderer maps
// the values it does not know onto its normal eye.
type EyeStyle int

const (
	EyeNormal EyeStyle = iota
	EyeStar
	EyeHeart
	EyeWink
	EyeClosed
	EyeSurprised
	EyeHappy
)

var eyeStyleNames = []string{"normal", "star", "heart", "wink", "closed", "surprised", "happy"}

// EyeStyles lists every eye style in declaration order.
func EyeStyles() []EyeStyle {
	out := make([]EyeStyle, len(eyeStyleNames))
	for i := range out {
		out[i] = EyeStyle(i)
	}
	return out
}

func (e EyeStyle) String() string {
	if e < 0 || int(e) >= len(eyeStyleNames) {
		return fmt.Sprintf("EyeStyle(%d)", int(e))
	}
	return eyeStyleNames[e]
}

// ParseEyeStyle returns the eye style named s (case-insensitive).
func ParseEyeStyle(s string) (EyeStyle, error) {
	i, ok := lookup(eyeStyleNames, s)
	if !ok {
		return EyeNormal, fmt.Errorf("features: unknown eye style %q", s)
	}
	return EyeStyle(i), nil
}

func (e EyeStyle) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EyeStyle) UnmarshalText(text []byte) error {
	v, err := ParseEyeStyle(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MouthStyle selects the mouth arc. happy/sad belong to the 3D scene and smile/frown to
// the 2D canvas; happy draws like smile and sad like frown.
type MouthStyle int

const (
	MouthHappy MouthStyle = iota
	MouthSad
	MouthSmile
	MouthFrown
)

var mouthStyleNames = []string{"happy", "sad", "smile", "frown"}

// MouthStyles lists every mouth style in declaration order.
func MouthStyles() []MouthStyle {
	out := make([]MouthStyle, len(mouthStyleNames))
	for i := range out {
		out[i] = MouthStyle(i)
	}
	return out
}

func (m MouthStyle) String() string {
	if m < 0 || int(m) >= len(mouthStyleNames) {
		return fmt.Sprintf("MouthStyle(%d)", int(m))
	}
	return mouthStyleNames[m]
}

// Smiling reports whether the mouth curves upward (happy or smile).
func (m MouthStyle) Smiling() bool {
	return m != MouthSad && m != MouthFrown
}

// ParseMouthStyle returns the mouth style named s (case-insensitive).
func ParseMouthStyle(s string) (MouthStyle, error) {
	i, ok := lookup(mouthStyleNames, s)
	if !ok {
		return MouthHappy, fmt.Errorf("features: unknown mouth style %q", s)
	}
	return MouthStyle(i), nil
}

func (m MouthStyle) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MouthStyle) UnmarshalText(text []byte) error {
	v, err := ParseMouthStyle(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Accessory is one wearable item. Accessories are kept as a set, see State.Toggle.
type Accessory int

const (
	Hat Accessory = iota
	Glasses
)

var accessoryNames = []string{"hat", "glasses"}

// Accessories lists every accessory in canonical order.
func Accessories() []Accessory {
	return []Accessory{Hat, Glasses}
}

func (a Accessory) String() string {
	if a < 0 || int(a) >= len(accessoryNames) {
		return fmt.Sprintf("Accessory(%d)", int(a))
	}
	return accessoryNames[a]
}

// ParseAccessory returns the accessory named s (case-insensitive).
func ParseAccessory(s string) (Accessory, error) {
	i, ok := lookup(accessoryNames, s)
	if !ok {
		return Hat, fmt.Errorf("features: unknown accessory %q", s)
	}
	return Accessory(i), nil
}

func (a Accessory) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Accessory) UnmarshalText(text []byte) error {
	v, err := ParseAccessory(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func lookup(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
