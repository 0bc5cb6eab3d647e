package fonts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFaceSet_VariableFirstThenAscendingWeights(t *testing.T) {
	fam := Family{
		Variable: "v.ttf",
		Weights:  map[int]string{700: "b.ttf", 300: "l.ttf", 400: "r.ttf"},
	}

	set := BuildFaceSet("Test", fam, nil)
	require.Len(t, set.Faces, 4)

	assert.Equal(t, Face{Source: "v.ttf", WeightMin: 100, WeightMax: 900, Variable: true}, set.Faces[0])
	assert.Equal(t, Face{Source: "l.ttf", WeightMin: 300, WeightMax: 300}, set.Faces[1])
	assert.Equal(t, Face{Source: "r.ttf", WeightMin: 400, WeightMax: 400}, set.Faces[2])
	assert.Equal(t, Face{Source: "b.ttf", WeightMin: 700, WeightMax: 700}, set.Faces[3])
}

func TestBuildFaceSet_StaticOnly(t *testing.T) {
	set := BuildFaceSet("Test", Family{Weights: map[int]string{400: "r.ttf"}}, func(s string) string { return "/fonts/" + s })
	require.Len(t, set.Faces, 1)
	assert.False(t, set.Faces[0].Variable)
	assert.Equal(t, "/fonts/r.ttf", set.Faces[0].Source)
}

func TestFaceSet_Pick(t *testing.T) {
	static := BuildFaceSet("S", Family{Weights: map[int]string{300: "l", 500: "m", 700: "b"}}, nil)
	withVariable := BuildFaceSet("V", Family{Variable: "v", Weights: map[int]string{700: "b"}}, nil)

	tests := []struct {
		name     string
		set      FaceSet
		weight   int
		expected string
	}{
		{"exact static", static, 500, "m"},
		{"nearest static", static, 650, "b"},
		{"tie prefers lighter", static, 400, "l"},
		{"exact static beats variable", withVariable, 700, "b"},
		{"variable covers the rest", withVariable, 300, "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, ok := tt.set.Pick(tt.weight)
			require.True(t, ok)
			assert.Equal(t, tt.expected, face.Source)
		})
	}

	_, ok := FaceSet{Family: "empty"}.Pick(400)
	assert.False(t, ok)
}

func TestFaceSet_CSS(t *testing.T) {
	set := BuildFaceSet("Inter", Family{Variable: "v.ttf", Weights: map[int]string{400: "r.ttf"}}, nil)
	css := set.CSS()

	assert.Equal(t, 2, strings.Count(css, "@font-face"))
	assert.Contains(t, css, `font-family: "Inter";`)
	assert.Contains(t, css, "font-weight: 100 900;")
	assert.Contains(t, css, "font-weight: 400;")
	assert.Less(t, strings.Index(css, "v.ttf"), strings.Index(css, "r.ttf"))
}
