package fonts

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

// ResourceSink loads installed faces as Fyne resources so canvas text can use
// them through FontSource.
type ResourceSink struct {
	load func(path string) (fyne.Resource, error)

	mu        sync.RWMutex
	set       FaceSet
	resources map[string]fyne.Resource
}

// NewResourceSink creates a sink that reads font files from disk.
func NewResourceSink() *ResourceSink {
	return NewResourceSinkWithLoader(fyne.LoadResourceFromPath)
}

// NewResourceSinkWithLoader creates a sink with a custom resource loader.
func NewResourceSinkWithLoader(load func(path string) (fyne.Resource, error)) *ResourceSink {
	return &ResourceSink{
		load:      load,
		resources: make(map[string]fyne.Resource),
	}
}

// Install loads every face of set. Faces whose file cannot be loaded are
// skipped; the joined error reports them.
func (s *ResourceSink) Install(set FaceSet) error {
	loaded := make(map[string]fyne.Resource, len(set.Faces))
	var errs []error
	for _, f := range set.Faces {
		if _, ok := loaded[f.Source]; ok {
			continue
		}
		res, err := s.load(f.Source)
		if err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", f.Source, err))
			continue
		}
		loaded[f.Source] = res
	}

	s.mu.Lock()
	s.set = set
	s.resources = loaded
	s.mu.Unlock()

	return errors.Join(errs...)
}

// Remove drops set if it is the one installed.
func (s *ResourceSink) Remove(set FaceSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set.Family != set.Family {
		return
	}
	s.set = FaceSet{}
	s.resources = make(map[string]fyne.Resource)
}

// Font returns the resource to paint family at weight, or nil to fall back
// to the theme font.
func (s *ResourceSink) Font(family string, weight int) fyne.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if family == "" || s.set.Family != family {
		return nil
	}

	available := FaceSet{Family: s.set.Family}
	for _, f := range s.set.Faces {
		if _, ok := s.resources[f.Source]; ok {
			available.Faces = append(available.Faces, f)
		}
	}
	face, ok := available.Pick(weight)
	if !ok {
		return nil
	}
	return s.resources[face.Source]
}

// Family returns the installed family name.
func (s *ResourceSink) Family() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Family
}
