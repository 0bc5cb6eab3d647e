package fonts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ytget/text-overlay/internal/model"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ErrUnknownFamily is returned when a family has no manifest entry.
var ErrUnknownFamily = errors.New("unknown font family")

// Family lists the sources of one font family.
type Family struct {
	Variable string         `yaml:"variable,omitempty"`
	Weights  map[int]string `yaml:"weights,omitempty"`
}

// Manifest maps family names to their sources. It is read-only after loading.
type Manifest struct {
	Families map[string]Family `yaml:"families"`

	// BaseDir resolves relative source paths. Empty means the working directory.
	BaseDir string `yaml:"-"`
}

// DefaultManifest returns the built-in manifest.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(defaultManifest, "")
}

// LoadManifestFile reads a manifest from disk. Relative sources are resolved
// against the file's directory.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font manifest: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest decodes YAML manifest data and validates weights.
func ParseManifest(data []byte, baseDir string) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse font manifest: %w", err)
	}
	if m.Families == nil {
		m.Families = make(map[string]Family)
	}
	for name, fam := range m.Families {
		if fam.Variable == "" && len(fam.Weights) == 0 {
			return nil, fmt.Errorf("font family %q has no sources", name)
		}
		for w := range fam.Weights {
			if w < 1 || w > 1000 {
				return nil, fmt.Errorf("font family %q: weight %d out of range", name, w)
			}
		}
	}
	m.BaseDir = baseDir
	return m, nil
}

// Family returns the entry for name, or ErrUnknownFamily.
func (m *Manifest) Family(name string) (Family, error) {
	if m != nil {
		if fam, ok := m.Families[name]; ok {
			return fam, nil
		}
	}
	return Family{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// WeightOptions returns the weights the editor offers for family: a fixed
// range for the system font, the full range when a variable source exists,
// the discrete weights of a static-only family, and regular/bold otherwise.
func (m *Manifest) WeightOptions(family string) []int {
	if family == "" || family == model.SystemFontFamily {
		return []int{300, 400, 500, 600, 700}
	}
	fam, err := m.Family(family)
	switch {
	case err != nil:
		return []int{400, 700}
	case fam.Variable != "":
		weights := make([]int, 0, 9)
		for w := model.MinFontWeight; w <= model.MaxFontWeight; w += 100 {
			weights = append(weights, w)
		}
		return weights
	case len(fam.Weights) > 0:
		return fam.SortedWeights()
	default:
		return []int{400, 700}
	}
}

// Names returns the family names sorted alphabetically.
func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Families))
	for name := range m.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a source path from the manifest into a filesystem path.
func (m *Manifest) Resolve(source string) string {
	if source == "" || filepath.IsAbs(source) || m.BaseDir == "" {
		return source
	}
	return filepath.Join(m.BaseDir, source)
}

// SortedWeights returns the discrete weights in ascending order.
func (f Family) SortedWeights() []int {
	weights := make([]int, 0, len(f.Weights))
	for w := range f.Weights {
		weights = append(weights, w)
	}
	sort.Ints(weights)
	return weights
}
