// Package features holds the emoji's feature state: the single record every renderer,
// control and console command reads from. A State is a value; edits produce a new State.
package features

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

const (
	DefaultColor          = "#FFE55C"
	DefaultAccessoryColor = "#FF5C5C"
	DefaultEyeSize        = 20

	MinEyeSize = 10
	MaxEyeSize = 50
)

// State describes the emoji's current appearance.
type State struct {
	Color          string      `yaml:"color"`
	EyeStyle       EyeStyle    `yaml:"eyeStyle"`
	MouthStyle     MouthStyle  `yaml:"mouthStyle"`
	Metallic       bool        `yaml:"metallic"`
	Bouncing       bool        `yaml:"bouncing"`
	Accessories    []Accessory `yaml:"accessories,flow"`
	AccessoryColor string      `yaml:"accessoryColor"`
	// EyeSize is the 2D eye radius in pixels, [MinEyeSize, MaxEyeSize].
	EyeSize int `yaml:"eyeSize"`
}

// Default returns the state the application starts with.
func Default() State {
	return State{
		Color:          DefaultColor,
		EyeStyle:       EyeNormal,
		MouthStyle:     MouthHappy,
		Metallic:       false,
		Bouncing:       true,
		Accessories:    nil,
		AccessoryColor: DefaultAccessoryColor,
		EyeSize:        DefaultEyeSize,
	}
}

// Field names accepted by Update. FieldAccessory toggles membership of one accessory.
const (
	FieldColor          = "color"
	FieldEyeStyle       = "eyeStyle"
	FieldMouthStyle     = "mouthStyle"
	FieldMetallic       = "metallic"
	FieldBouncing       = "bouncing"
	FieldAccessory      = "accessory"
	FieldAccessoryColor = "accessoryColor"
	FieldEyeSize        = "eyeSize"
)

// Fields lists the field names accepted by Update.
func Fields() []string {
	return []string{FieldColor, FieldEyeStyle, FieldMouthStyle, FieldMetallic, FieldBouncing, FieldAccessory, FieldAccessoryColor, FieldEyeSize}
}

// Update is one field-level edit emitted by a control: (field name, new value).
type Update struct {
	Field string
	Value string
}

func (u Update) String() string {
	return u.Field + "=" + u.Value
}

// With returns a copy of s with u applied. s itself is never modified and the result
// shares no memory with it. On error s is returned unchanged.
func (s State) With(u Update) (State, error) {
	next, err := s.clone()
	if err != nil {
		return s, err
	}
	switch fieldKey(u.Field) {
	case fieldKey(FieldColor):
		c, err := NormalizeColor(u.Value)
		if err != nil {
			return s, err
		}
		next.Color = c
	case fieldKey(FieldAccessoryColor):
		c, err := NormalizeColor(u.Value)
		if err != nil {
			return s, err
		}
		next.AccessoryColor = c
	case fieldKey(FieldEyeStyle):
		e, err := ParseEyeStyle(u.Value)
		if err != nil {
			return s, err
		}
		next.EyeStyle = e
	case fieldKey(FieldMouthStyle):
		m, err := ParseMouthStyle(u.Value)
		if err != nil {
			return s, err
		}
		next.MouthStyle = m
	case fieldKey(FieldMetallic):
		b, err := parseSwitch(u.Value, s.Metallic)
		if err != nil {
			return s, err
		}
		next.Metallic = b
	case fieldKey(FieldBouncing):
		b, err := parseSwitch(u.Value, s.Bouncing)
		if err != nil {
			return s, err
		}
		next.Bouncing = b
	case fieldKey(FieldAccessory), "accessories":
		a, err := ParseAccessory(u.Value)
		if err != nil {
			return s, err
		}
		next.Accessories = toggled(next.Accessories, a)
	case fieldKey(FieldEyeSize):
		n, err := strconv.Atoi(strings.TrimSpace(u.Value))
		if err != nil {
			return s, fmt.Errorf("features: invalid eye size %q", u.Value)
		}
		next.EyeSize = ClampEyeSize(n)
	default:
		return s, fmt.Errorf("features: unknown field %q", u.Field)
	}
	return next, nil
}

// Toggle returns a copy of s with a added to or removed from the accessory set.
func (s State) Toggle(a Accessory) State {
	next, err := s.With(Update{Field: FieldAccessory, Value: a.String()})
	if err != nil {
		return s
	}
	return next
}

// Has reports whether accessory a is worn.
func (s State) Has(a Accessory) bool {
	return slices.Contains(s.Accessories, a)
}

// Equal reports whether s and o describe the same emoji. A nil and an empty accessory
// set are equal.
func (s State) Equal(o State) bool {
	return s.Color == o.Color &&
		s.EyeStyle == o.EyeStyle &&
		s.MouthStyle == o.MouthStyle &&
		s.Metallic == o.Metallic &&
		s.Bouncing == o.Bouncing &&
		slices.Equal(s.Accessories, o.Accessories) &&
		s.AccessoryColor == o.AccessoryColor &&
		s.EyeSize == o.EyeSize
}

// Normalize repairs a state decoded from outside (preset files): colors are
// canonicalized, eye size clamped, accessories deduplicated and sorted. Invalid colors
// fall back to their defaults.
func (s State) Normalize() State {
	next, err := s.clone()
	if err != nil {
		return Default()
	}
	if c, err := NormalizeColor(next.Color); err == nil {
		next.Color = c
	} else {
		next.Color = DefaultColor
	}
	if c, err := NormalizeColor(next.AccessoryColor); err == nil {
		next.AccessoryColor = c
	} else {
		next.AccessoryColor = DefaultAccessoryColor
	}
	if next.EyeSize == 0 {
		next.EyeSize = DefaultEyeSize
	}
	next.EyeSize = ClampEyeSize(next.EyeSize)
	next.Accessories = canonical(next.Accessories)
	return next
}

// ClampEyeSize limits n to [MinEyeSize, MaxEyeSize].
func ClampEyeSize(n int) int {
	return max(MinEyeSize, min(MaxEyeSize, n))
}

func (s State) String() string {
	names := make([]string, len(s.Accessories))
	for i, a := range s.Accessories {
		names[i] = a.String()
	}
	return fmt.Sprintf("color=%s eyes=%s mouth=%s metallic=%t bouncing=%t accessories=[%s] accessoryColor=%s eyeSize=%d",
		s.Color, s.EyeStyle, s.MouthStyle, s.Metallic, s.Bouncing, strings.Join(names, ","), s.AccessoryColor, s.EyeSize)
}

func (s State) clone() (State, error) {
	var next State
	if err := copier.CopyWithOption(&next, &s, copier.Option{DeepCopy: true}); err != nil {
		return s, fmt.Errorf("features: copy state: %w", err)
	}
	return next, nil
}

// toggled returns set with a flipped, in canonical order. set is not modified.
func toggled(set []Accessory, a Accessory) []Accessory {
	if i := slices.Index(set, a); i >= 0 {
		out := slices.Delete(slices.Clone(set), i, i+1)
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return canonical(append(slices.Clone(set), a))
}

func canonical(set []Accessory) []Accessory {
	if len(set) == 0 {
		return nil
	}
	out := slices.Clone(set)
	slices.Sort(out)
	return slices.Compact(out)
}

func fieldKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// parseSwitch accepts the usual boolean spellings plus on/off and "toggle".
func parseSwitch(v string, current bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	case "toggle":
		return !current, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return current, fmt.Errorf("features: invalid switch value %q", v)
	}
	return b, nil
}
