package hpge

import (
	"math"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// ProfileBuilder computes the ordered (r, z) polycone vertices and the
// per-segment surface labels for one geometry variant.
type ProfileBuilder func(meta *metadata.Metadata) (geometry.Profile, []Surface, error)

var builderByType = map[metadata.DetectorType]ProfileBuilder{
	metadata.TypeBeGe: buildBeGe,
	metadata.TypePPC:  buildPPC,
	metadata.TypeICPC: buildICPC,
	metadata.TypeCoax: buildCoax,
}

// Special-geometry detectors dispatch on the detector name instead of
// the type tag.
var builderByName = map[string]ProfileBuilder{}

// Register installs a builder for a detector type tag. New variants
// plug in here without touching the factory dispatch.
func Register(detectorType metadata.DetectorType, builder ProfileBuilder) {
	builderByType[detectorType] = builder
}

// RegisterSpecial installs a builder for a single special detector,
// keyed by its metadata name.
func RegisterSpecial(name string, builder ProfileBuilder) {
	builderByName[name] = builder
}

func builderFor(meta *metadata.Metadata) (ProfileBuilder, error) {
	if builder, ok := builderByName[meta.Name]; ok {
		return builder, nil
	}
	if meta.Type == metadata.TypeSpecial {
		return nil, errors.UnsupportedType(meta.Name)
	}
	if builder, ok := builderByType[meta.Type]; ok {
		return builder, nil
	}
	return nil, errors.UnsupportedType(string(meta.Type))
}

// recorder accumulates profile vertices together with the label of the
// segment arriving at each vertex.
type recorder struct {
	r        []float64
	z        []float64
	surfaces []Surface
}

func (p *recorder) start(r, z float64) {
	p.r = append(p.r, r)
	p.z = append(p.z, z)
}

func (p *recorder) add(r, z float64, surface Surface) {
	p.r = append(p.r, r)
	p.z = append(p.z, z)
	p.surfaces = append(p.surfaces, surface)
}

func (p *recorder) profile() (geometry.Profile, []Surface, error) {
	profile, err := geometry.NewProfile(p.r, p.z)
	if err != nil {
		return geometry.Profile{}, nil, err
	}
	return profile, p.surfaces, nil
}

func tanDeg(angle float64) float64 {
	return math.Tan(math.Pi * angle / 180)
}
