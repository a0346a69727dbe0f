package vdmodel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/internal/options"
	"github.com/openvd/vdkit/lut"
)

// Registry loads a manifest and its model blob together and cross-checks
// them: every table the manifest declares must exist in the blob with the
// declared dimensionality. After a successful Load the registry resolves
// tables by their manifest names.
//
// A Registry is loaded once and read-only afterwards; reads are safe for
// concurrent use.
type Registry struct {
	logger   *zap.Logger
	manifest *Manifest
	blob     *Blob
}

// RegistryOption configures a Registry at construction time.
type RegistryOption = options.Option[*Registry]

// WithLogger sets the logger used during Load. The default is a no-op
// logger.
func WithLogger(logger *zap.Logger) RegistryOption {
	return options.New(func(r *Registry) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		r.logger = logger

		return nil
	})
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	reg := &Registry{
		logger: zap.NewNop(),
	}

	if err := options.Apply(reg, opts...); err != nil {
		return nil, err
	}

	return reg, nil
}

// Load parses the manifest, decodes the blob, and verifies they agree.
//
// Tables present in the blob but absent from the manifest are allowed (the
// manifest narrows the published surface); the reverse is an error.
func (r *Registry) Load(manifestData, blobData []byte) error {
	manifest, err := ParseManifest(manifestData)
	if err != nil {
		return err
	}

	blob, err := Decode(blobData)
	if err != nil {
		return fmt.Errorf("model %q: %w", manifest.Model, err)
	}

	for _, ti := range manifest.Tables {
		wantKind, _ := ti.TableKind()
		gotKind, ok := blob.Kind(ti.Name)
		if !ok {
			return fmt.Errorf("model %q table %q: %w", manifest.Model, ti.Name, errs.ErrTableNotFound)
		}
		if gotKind != wantKind {
			return fmt.Errorf("model %q table %q: manifest says %s, blob has %s: %w",
				manifest.Model, ti.Name, wantKind, gotKind, errs.ErrTableKindMismatch)
		}

		r.logger.Debug("model table loaded",
			zap.String("model", manifest.Model),
			zap.String("table", ti.Name),
			zap.String("kind", ti.Kind),
			zap.String("unit", ti.Unit),
		)
	}

	r.manifest = manifest
	r.blob = blob

	r.logger.Info("model loaded",
		zap.String("model", manifest.Model),
		zap.String("version", manifest.Version),
		zap.Int("tables", len(manifest.Tables)),
		zap.Time("created_at", blob.CreatedAt()),
	)

	return nil
}

// Manifest returns the loaded manifest, or nil before Load.
func (r *Registry) Manifest() *Manifest {
	return r.manifest
}

// Info returns the manifest entry for a table name.
func (r *Registry) Info(name string) (TableInfo, bool) {
	if r.manifest == nil {
		return TableInfo{}, false
	}

	return r.manifest.Info(name)
}

// Table1D resolves a manifest-declared 1D table by name.
func (r *Registry) Table1D(name string) (*lut.Table1D, error) {
	if err := r.declared(name); err != nil {
		return nil, err
	}

	return r.blob.Table1D(name)
}

// Table2D resolves a manifest-declared 2D table by name.
func (r *Registry) Table2D(name string) (*lut.Table2D, error) {
	if err := r.declared(name); err != nil {
		return nil, err
	}

	return r.blob.Table2D(name)
}

// Table3D resolves a manifest-declared 3D table by name.
func (r *Registry) Table3D(name string) (*lut.Table3D, error) {
	if err := r.declared(name); err != nil {
		return nil, err
	}

	return r.blob.Table3D(name)
}

// declared checks that Load ran and the name is published by the manifest.
func (r *Registry) declared(name string) error {
	if r.blob == nil {
		return fmt.Errorf("registry not loaded")
	}
	if _, ok := r.manifest.Info(name); !ok {
		return fmt.Errorf("table %q not declared in manifest: %w", name, errs.ErrTableNotFound)
	}

	return nil
}
