package hpge

import "encoding/json"

// Surface classifies one profile segment by electrode/surface type.
type Surface int

// Surface types of a revolved profile segment.
const (
	SurfaceNone Surface = iota
	SurfacePPlus
	SurfaceNPlus
	SurfacePassive
)

var surfaceNames = map[Surface]string{
	SurfaceNone:    "none",
	SurfacePPlus:   "p+",
	SurfaceNPlus:   "n+",
	SurfacePassive: "passive",
}

// String ...
func (s Surface) String() string {
	if name, ok := surfaceNames[s]; ok {
		return name
	}
	return "none"
}

// MarshalJSON ...
func (s Surface) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
