package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "your text goes here", s.Text)
	assert.Equal(t, SystemFontFamily, s.FontFamily)
	assert.Equal(t, 48.0, s.FontSize)
	assert.Equal(t, "700", s.FontWeight)
	assert.Equal(t, HAlignLeft, s.HAlign)
	assert.Equal(t, VAlignStart, s.VAlign)
	assert.Equal(t, 20.0, s.Padding)
	assert.Equal(t, Shadow{Color: "#000000", Opacity: 0.7, OffsetX: 3, OffsetY: 3, Blur: 10}, s.Shadow)
}

func TestDecodeSettings_Empty(t *testing.T) {
	s, err := DecodeSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	s, err = DecodeSettings([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestDecodeSettings_PartialMergesFieldByField(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		mutate func(*Settings)
	}{
		{
			name:   "text only",
			stored: `{"text":"Live"}`,
			mutate: func(s *Settings) { s.Text = "Live" },
		},
		{
			name:   "typography",
			stored: `{"fontSize":72,"fontWeight":"300","color":"#ff0000"}`,
			mutate: func(s *Settings) {
				s.FontSize = 72
				s.FontWeight = "300"
				s.Color = "#ff0000"
			},
		},
		{
			name:   "nested shadow keeps absent keys",
			stored: `{"shadow":{"opacity":0.25}}`,
			mutate: func(s *Settings) { s.Shadow.Opacity = 0.25 },
		},
		{
			name:   "alignment and display",
			stored: `{"horizontalAlign":"right","verticalAlign":"end","display":"secondary"}`,
			mutate: func(s *Settings) {
				s.HAlign = HAlignRight
				s.VAlign = VAlignEnd
				s.Display = DisplaySecondary
			},
		},
		{
			name:   "numeric font weight",
			stored: `{"fontWeight":500}`,
			mutate: func(s *Settings) { s.FontWeight = "500" },
		},
		{
			name:   "null keeps default",
			stored: `{"fontWeight":null,"text":null}`,
			mutate: func(s *Settings) {},
		},
		{
			name:   "explicit false click-through",
			stored: `{"clickThrough":false}`,
			mutate: func(s *Settings) { s.ClickThrough = false },
		},
		{
			name:   "unknown keys ignored",
			stored: `{"legacy":true,"padding":8}`,
			mutate: func(s *Settings) { s.Padding = 8 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := DefaultSettings()
			tt.mutate(&expected)

			got, err := DecodeSettings([]byte(tt.stored))
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestDecodeSettings_InvalidFallsBackToDefaults(t *testing.T) {
	s, err := DecodeSettings([]byte(`{"text":`))
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestDecodeSettings_BadKeyKeepsTheRest(t *testing.T) {
	got, err := DecodeSettings([]byte(`{"text":"Keep me","padding":10,"fontWeight":700,"fontSize":"huge","clickThrough":"yes"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fontSize"`)
	assert.Contains(t, err.Error(), `"clickThrough"`)

	expected := DefaultSettings()
	expected.Text = "Keep me"
	expected.Padding = 10
	expected.FontWeight = "700"
	assert.Equal(t, expected, got)
}

func TestDecodeSettings_BadShadowFieldKeepsSiblings(t *testing.T) {
	got, err := DecodeSettings([]byte(`{"shadow":{"color":"#123456","blur":"soft"}}`))
	require.Error(t, err)

	expected := DefaultSettings()
	expected.Shadow.Color = "#123456"
	assert.Equal(t, expected, got)
}

func TestEncodeDecodeCarriesEveryField(t *testing.T) {
	s := DefaultSettings()
	s.Text = "Hello"
	s.Position = PositionBottomRight
	s.Shadow.Blur = 25

	data, err := s.Encode()
	require.NoError(t, err)

	got, err := DecodeSettings(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSettings_Weight(t *testing.T) {
	tests := []struct {
		weight   string
		expected int
	}{
		{"400", 400},
		{"700", 700},
		{"50", MinFontWeight},
		{"1200", MaxFontWeight},
		{"bold", 700},
		{"", 700},
	}

	for _, tt := range tests {
		s := DefaultSettings()
		s.FontWeight = tt.weight
		assert.Equal(t, tt.expected, s.Weight(), "weight %q", tt.weight)
	}
}

func TestSettings_Alignment(t *testing.T) {
	s := DefaultSettings()
	s.HAlign = HAlignLeft
	s.VAlign = "flex-end"
	h, v := s.Alignment()
	assert.Equal(t, HAlignLeft, h)
	assert.Equal(t, VAlignEnd, v)

	s.Position = PositionTopRight
	h, v = s.Alignment()
	assert.Equal(t, HAlignRight, h)
	assert.Equal(t, VAlignStart, v)

	s.Position = "??"
	s.HAlign = "sideways"
	s.VAlign = "up"
	h, v = s.Alignment()
	assert.Equal(t, DefaultHAlign, h)
	assert.Equal(t, DefaultVAlign, v)
}

func TestSettings_IsSystemFont(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.IsSystemFont())

	s.FontFamily = ""
	assert.True(t, s.IsSystemFont())

	s.FontFamily = "Inter"
	assert.False(t, s.IsSystemFont())
}
