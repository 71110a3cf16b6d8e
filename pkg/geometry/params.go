package geometry

import "fmt"

// Resolution minimums. Anything lower is rejected, never clamped.
const (
	MinLongitude = 3
	MinLatitude  = 2
	MinRadial    = 3
)

// Default resolutions used when nothing else is configured.
const (
	DefaultLongitude = 32
	DefaultLatitude  = 16
	DefaultRadial    = 32
)

// Params holds the tessellation settings. Fields a family does not use
// are ignored.
type Params struct {
	// Longitude is the number of sphere segments around the Z axis.
	Longitude int
	// Latitude is the number of sphere bands from pole to pole.
	Latitude int
	// Radial is the number of cylinder/cone segments around the Z axis.
	Radial int
	// Caps adds flat end disks to cylinders and cones.
	Caps bool
}

// DefaultParams returns the default resolution with caps enabled.
func DefaultParams() Params {
	return Params{
		Longitude: DefaultLongitude,
		Latitude:  DefaultLatitude,
		Radial:    DefaultRadial,
		Caps:      true,
	}
}

// ParamError reports a resolution parameter below its minimum.
type ParamError struct {
	Kind  Kind
	Field string
	Value int
	Min   int
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %d is below the minimum of %d", e.Kind, e.Field, e.Value, e.Min)
}

// Validate checks the parameters that matter for kind.
func (p Params) Validate(kind Kind) error {
	switch kind {
	case Sphere:
		if p.Longitude < MinLongitude {
			return &ParamError{Kind: kind, Field: "longitude", Value: p.Longitude, Min: MinLongitude}
		}
		if p.Latitude < MinLatitude {
			return &ParamError{Kind: kind, Field: "latitude", Value: p.Latitude, Min: MinLatitude}
		}
	case Cylinder, Cone:
		if p.Radial < MinRadial {
			return &ParamError{Kind: kind, Field: "radial", Value: p.Radial, Min: MinRadial}
		}
	case Cuboid, Quad, Axes:
	default:
		return fmt.Errorf("unknown shape kind %d", kind)
	}
	return nil
}

// Counts returns the exact vertex and index counts Generate produces,
// without generating anything.
func Counts(kind Kind, p Params) (vertices, indices int, err error) {
	if err := p.Validate(kind); err != nil {
		return 0, 0, err
	}
	switch kind {
	case Cuboid:
		return 24, 36, nil
	case Quad:
		return 4, 6, nil
	case Sphere:
		lon, lat := p.Longitude, p.Latitude
		return (lat-1)*(lon+1) + 2*lon, 6 * lon * (lat - 1), nil
	case Cylinder:
		n := p.Radial
		vertices, indices = 2*(n+1), 6*n
		if p.Caps {
			vertices += 2 * (n + 1)
			indices += 6 * n
		}
		return vertices, indices, nil
	case Cone:
		n := p.Radial
		vertices, indices = 2*n+1, 3*n
		if p.Caps {
			vertices += n + 1
			indices += 3 * n
		}
		return vertices, indices, nil
	case Axes:
		return 6, 6, nil
	}
	return 0, 0, fmt.Errorf("unknown shape kind %d", kind)
}
