package fonts

import (
	"log/slog"
	"sync"

	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/model"
)

// Sink receives face sets. Remove is always called with the previously
// installed set before the next Install.
type Sink interface {
	Install(set FaceSet) error
	Remove(set FaceSet)
}

// Resolver keeps one active face set installed in its sink.
type Resolver struct {
	manifest *Manifest
	sink     Sink
	log      *slog.Logger

	mu     sync.Mutex
	active *FaceSet
}

// NewResolver creates a resolver over manifest that installs into sink.
func NewResolver(manifest *Manifest, sink Sink) *Resolver {
	if manifest == nil {
		manifest = &Manifest{Families: map[string]Family{}}
	}
	return &Resolver{
		manifest: manifest,
		sink:     sink,
		log:      logging.WithComponent("fonts"),
	}
}

// Manifest returns the manifest the resolver reads from.
func (r *Resolver) Manifest() *Manifest {
	return r.manifest
}

// EnsureLoaded installs the face set for family, replacing whatever set was
// active before. The system default family and families without a manifest
// entry are left alone.
func (r *Resolver) EnsureLoaded(family string) {
	if family == "" || family == model.SystemFontFamily {
		return
	}
	fam, err := r.manifest.Family(family)
	if err != nil {
		r.log.Debug("leaving family to the host", "error", err)
		return
	}

	set := BuildFaceSet(family, fam, r.manifest.Resolve)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		r.sink.Remove(*r.active)
		r.active = nil
	}
	if err := r.sink.Install(set); err != nil {
		r.log.Warn("font faces partially installed", "family", family, "error", err)
	}
	r.active = &set
}

// Active returns the installed face set, if any.
func (r *Resolver) Active() (FaceSet, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return FaceSet{}, false
	}
	return *r.active, true
}
