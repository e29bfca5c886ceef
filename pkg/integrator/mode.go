package integrator

import "fmt"

// ModeKind selects what a render computes per pixel
type ModeKind int

const (
	ModeShade            ModeKind = iota // Full path traced radiance
	ModeNormal                           // Raw geometric normal of the first hit
	ModeNormalColor                      // Reflectance shaded by the facing ratio
	ModeDepth                            // Distance falloff to the first hit
	ModeDepthNormalColor                 // Normalized NormalColor times the depth falloff
)

var modeNames = map[ModeKind]string{
	ModeShade:            "shade",
	ModeNormal:           "normal",
	ModeNormalColor:      "normal-color",
	ModeDepth:            "depth",
	ModeDepthNormalColor: "depth-normal-color",
}

func (k ModeKind) String() string {
	if name, ok := modeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ModeKind(%d)", int(k))
}

// Mode is a render mode. Range is the falloff distance used by the depth modes.
type Mode struct {
	Kind  ModeKind
	Range float64
}

func Shade() Mode       { return Mode{Kind: ModeShade} }
func Normal() Mode      { return Mode{Kind: ModeNormal} }
func NormalColor() Mode { return Mode{Kind: ModeNormalColor} }

// Depth maps hit distance t to 1 - t/d
func Depth(d float64) Mode { return Mode{Kind: ModeDepth, Range: d} }

func DepthNormalColor(d float64) Mode { return Mode{Kind: ModeDepthNormalColor, Range: d} }

// Stochastic reports whether the mode consumes random samples.
// Debug modes trace one deterministic ray through each pixel centre.
func (m Mode) Stochastic() bool {
	return m.Kind == ModeShade
}

// Validate checks that depth modes carry a positive range
func (m Mode) Validate() error {
	if _, ok := modeNames[m.Kind]; !ok {
		return fmt.Errorf("unknown render mode %v", m.Kind)
	}
	if (m.Kind == ModeDepth || m.Kind == ModeDepthNormalColor) && !(m.Range > 0) {
		return fmt.Errorf("render mode %v requires a positive range, got %g", m.Kind, m.Range)
	}
	return nil
}

func (m Mode) String() string {
	if m.Kind == ModeDepth || m.Kind == ModeDepthNormalColor {
		return fmt.Sprintf("%v(%g)", m.Kind, m.Range)
	}
	return m.Kind.String()
}

// ParseMode converts a mode name to a Mode. depthRange is used by the depth modes only.
func ParseMode(name string, depthRange float64) (Mode, error) {
	for kind, n := range modeNames {
		if n == name {
			m := Mode{Kind: kind}
			if kind == ModeDepth || kind == ModeDepthNormalColor {
				m.Range = depthRange
			}
			return m, m.Validate()
		}
	}
	return Mode{}, fmt.Errorf("unknown render mode %q", name)
}
