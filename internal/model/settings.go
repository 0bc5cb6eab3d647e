package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// SystemFontFamily is the family name that means "use the toolkit font"
const SystemFontFamily = "system-ui"

// Default values
const (
	DefaultText          = "your text goes here"
	DefaultFontFamily    = SystemFontFamily
	DefaultFontSize      = 48.0
	DefaultLetterSpacing = 0.0
	DefaultColor         = "#ffffff"
	DefaultFontWeight    = "700"
	DefaultHAlign        = HAlignLeft
	DefaultVAlign        = VAlignStart
	DefaultPadding       = 20.0
	DefaultDisplay       = DisplayPrimary
	DefaultClickThrough  = true

	DefaultShadowColor   = "#000000"
	DefaultShadowOpacity = 0.7
	DefaultShadowOffsetX = 3.0
	DefaultShadowOffsetY = 3.0
	DefaultShadowBlur    = 10.0
)

// Weight bounds accepted by the renderer
const (
	MinFontWeight = 100
	MaxFontWeight = 900
)

// Shadow groups the drop-shadow parameters
type Shadow struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
}

// Settings is the single persisted record shared by the overlay and the
// settings editor. It is passed by value; an edit always yields a new value.
type Settings struct {
	Text          string   `json:"text"`
	FontFamily    string   `json:"fontFamily"`
	FontSize      float64  `json:"fontSize"`
	LetterSpacing float64  `json:"letterSpacing"`
	Color         string   `json:"color"`
	FontWeight    string   `json:"fontWeight"`
	HAlign        HAlign   `json:"horizontalAlign"`
	VAlign        VAlign   `json:"verticalAlign"`
	Position      Position `json:"position,omitempty"`
	Padding       float64  `json:"padding"`
	Display       Display  `json:"display"`
	ClickThrough  bool     `json:"clickThrough"`
	Shadow        Shadow   `json:"shadow"`
}

// DefaultSettings returns a fully populated Settings with every default applied
func DefaultSettings() Settings {
	return Settings{
		Text:          DefaultText,
		FontFamily:    DefaultFontFamily,
		FontSize:      DefaultFontSize,
		LetterSpacing: DefaultLetterSpacing,
		Color:         DefaultColor,
		FontWeight:    DefaultFontWeight,
		HAlign:        DefaultHAlign,
		VAlign:        DefaultVAlign,
		Padding:       DefaultPadding,
		Display:       DefaultDisplay,
		ClickThrough:  DefaultClickThrough,
		Shadow: Shadow{
			Color:   DefaultShadowColor,
			Opacity: DefaultShadowOpacity,
			OffsetX: DefaultShadowOffsetX,
			OffsetY: DefaultShadowOffsetY,
			Blur:    DefaultShadowBlur,
		},
	}
}

// DecodeSettings decodes a stored, possibly partial, JSON record over the
// defaults. Each key is decoded on its own: a key that is absent or has the
// wrong type keeps its default while the other keys still apply. The nested
// shadow group merges the same way. The returned error lists the rejected
// keys; the returned Settings is always usable.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}

	var errs []error
	fields := s.fields()
	for key, value := range raw {
		target, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			errs = append(errs, fmt.Errorf("decode settings key %q: %w", key, err))
		}
	}
	return s, errors.Join(errs...)
}

// fields maps each JSON key onto the field it decodes into.
func (s *Settings) fields() map[string]any {
	return map[string]any{
		"text":            &s.Text,
		"fontFamily":      &s.FontFamily,
		"fontSize":        &s.FontSize,
		"letterSpacing":   &s.LetterSpacing,
		"color":           &s.Color,
		"fontWeight":      (*weightValue)(&s.FontWeight),
		"horizontalAlign": &s.HAlign,
		"verticalAlign":   &s.VAlign,
		"position":        &s.Position,
		"padding":         &s.Padding,
		"display":         &s.Display,
		"clickThrough":    &s.ClickThrough,
		"shadow":          &s.Shadow,
	}
}

// weightValue accepts a font weight stored as a string ("700") or a number (700).
type weightValue string

func (w *weightValue) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*w = weightValue(str)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("font weight must be a string or a number: %s", data)
	}
	*w = weightValue(strconv.FormatFloat(num, 'f', -1, 64))
	return nil
}

// Encode serializes the complete record
func (s Settings) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

// Weight returns the numeric font weight, falling back to the default weight
// when the stored string is not a number. The result is clamped to 100..900.
func (s Settings) Weight() int {
	w, err := strconv.Atoi(s.FontWeight)
	if err != nil {
		w, _ = strconv.Atoi(DefaultFontWeight)
	}
	if w < MinFontWeight {
		return MinFontWeight
	}
	if w > MaxFontWeight {
		return MaxFontWeight
	}
	return w
}

// IsSystemFont reports whether the family resolves to the toolkit font
func (s Settings) IsSystemFont() bool {
	return s.FontFamily == "" || s.FontFamily == SystemFontFamily
}

// Alignment resolves the effective alignment pair. A non-empty, valid Position
// takes precedence over HAlign/VAlign.
func (s Settings) Alignment() (HAlign, VAlign) {
	if s.Position != "" {
		if h, v, err := s.Position.Split(); err == nil {
			return h, v
		}
	}

	h := s.HAlign
	if !h.IsValid() {
		h = DefaultHAlign
	}
	v := s.VAlign.Normalize()
	if !v.IsValid() {
		v = DefaultVAlign
	}
	return h, v
}
