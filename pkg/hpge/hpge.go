// Package hpge converts declarative detector metadata into parametric
// solid-of-revolution descriptions of high-purity germanium detectors.
package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/config"
	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/material"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/solid"
)

var log = config.NamedLogger("hpge")

// New constructs a Detector from validated metadata. name overrides
// the metadata name when non-empty. A non-nil registry additionally
// materializes the profile as a solid and attaches a non-owning
// reference to it.
//
// Every construction error surfaces here; a returned Detector is fully
// built and immutable.
func New(meta *metadata.Metadata, name string, registry *solid.Registry) (*Detector, error) {
	if meta == nil {
		return nil, errors.Validation("", "metadata cannot be nil")
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = meta.Name
	}

	builder, err := builderFor(meta)
	if err != nil {
		return nil, err
	}
	profile, surfaces, err := builder(meta)
	if err != nil {
		return nil, err
	}
	if len(surfaces) != profile.Segments() {
		return nil, errors.Geometry("profile", "%d surface labels for %d segments", len(surfaces), profile.Segments())
	}

	germanium, err := material.Resolve(meta.Production)
	if err != nil {
		return nil, err
	}

	detector := &Detector{
		name:     name,
		meta:     *meta,
		profile:  profile,
		surfaces: surfaces,
		material: germanium,
	}

	if registry != nil {
		if _, err := registry.Materialize(name, profile); err != nil {
			return nil, err
		}
		detector.registry = registry
		detector.solidName = name
		log.Debugf("materialized solid %q in registry", name)
	}

	log.Debugf("built %s detector %q: %d profile vertices", meta.Type, name, profile.Len())
	return detector, nil
}

// NewFromFile constructs a Detector from a JSON metadata document.
func NewFromFile(path string, name string, registry *solid.Registry) (*Detector, error) {
	meta, err := metadata.FromFile(path)
	if err != nil {
		return nil, err
	}
	return New(meta, name, registry)
}
