package fonts

import (
	"fmt"
	"strings"
)

// Weight range covered by a variable face.
const (
	VariableWeightMin = 100
	VariableWeightMax = 900
)

// Face is one font-face declaration.
type Face struct {
	Source    string
	WeightMin int
	WeightMax int
	Variable  bool
}

// FaceSet is the block of declarations installed for one family.
type FaceSet struct {
	Family string
	Faces  []Face
}

// BuildFaceSet lays out the declarations for fam: the variable face first (if
// any), then one static face per weight in ascending order.
func BuildFaceSet(family string, fam Family, resolve func(string) string) FaceSet {
	if resolve == nil {
		resolve = func(s string) string { return s }
	}

	set := FaceSet{Family: family}
	if fam.Variable != "" {
		set.Faces = append(set.Faces, Face{
			Source:    resolve(fam.Variable),
			WeightMin: VariableWeightMin,
			WeightMax: VariableWeightMax,
			Variable:  true,
		})
	}
	for _, w := range fam.SortedWeights() {
		set.Faces = append(set.Faces, Face{
			Source:    resolve(fam.Weights[w]),
			WeightMin: w,
			WeightMax: w,
		})
	}
	return set
}

// Pick chooses the face for weight: an exact static match, then the variable
// face, then the static face with the nearest weight (lighter wins ties).
func (fs FaceSet) Pick(weight int) (Face, bool) {
	var variable *Face
	var nearest *Face
	nearestDist := 0

	for i := range fs.Faces {
		f := &fs.Faces[i]
		if f.Variable {
			if variable == nil {
				variable = f
			}
			continue
		}
		if f.WeightMin == weight {
			return *f, true
		}
		d := f.WeightMin - weight
		if d < 0 {
			d = -d
		}
		if nearest == nil || d < nearestDist {
			nearest = f
			nearestDist = d
		}
	}

	if variable != nil {
		return *variable, true
	}
	if nearest != nil {
		return *nearest, true
	}
	return Face{}, false
}

// CSS renders the set as @font-face rules.
func (fs FaceSet) CSS() string {
	var b strings.Builder
	for _, f := range fs.Faces {
		weight := fmt.Sprintf("%d", f.WeightMin)
		if f.WeightMin != f.WeightMax {
			weight = fmt.Sprintf("%d %d", f.WeightMin, f.WeightMax)
		}
		fmt.Fprintf(&b, "@font-face {\n  font-family: %q;\n  src: url(%q);\n  font-weight: %s;\n  font-display: block;\n}\n",
			fs.Family, f.Source, weight)
	}
	return b.String()
}
