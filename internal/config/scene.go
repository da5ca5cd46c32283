// Package config loads overlayctl scene files: YAML documents describing a
// subject/clip contour set plus the Options to run against them. Grounded
// on arl-go-detour's cmd/recast/cmd/config.go build-settings file, which
// plays the same role for navmesh builds.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-overlay/overlay"
)

// Point2 is the YAML-facing point representation (overlay.Point has no
// yaml tags of its own, since the core package stays free of the config
// layer's dependency).
type Point2 struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

// Scene is the top-level shape of an overlayctl scene file.
type Scene struct {
	FillRule        string      `yaml:"fill_rule"`
	OverlayRule     string      `yaml:"overlay_rule"`
	OutputDirection string      `yaml:"output_direction"`
	Solver          string      `yaml:"solver"`
	MinOutputArea   float64     `yaml:"min_output_area"`
	PreserveInput   bool        `yaml:"preserve_input_collinear"`
	PreserveOutput  bool        `yaml:"preserve_output_collinear"`
	OCG             bool        `yaml:"ocg"`
	Subject         [][]Point2  `yaml:"subject"`
	Clip            [][]Point2  `yaml:"clip"`
	Cutter          []Point2    `yaml:"cutter"`
	ClipInvert      bool        `yaml:"clip_invert"`
	ClipBoundary    bool        `yaml:"clip_boundary_included"`
}

// Load reads and parses a scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &s, nil
}

// toPaths converts a list of YAML point lists into overlay.Paths.
func toPaths(pts [][]Point2) overlay.Paths {
	out := make(overlay.Paths, len(pts))
	for i, p := range pts {
		out[i] = toPath(p)
	}
	return out
}

func toPath(pts []Point2) overlay.Path {
	out := make(overlay.Path, len(pts))
	for i, p := range pts {
		out[i] = overlay.Point{X: p.X, Y: p.Y}
	}
	return out
}

// SubjectPaths returns the scene's subject contours as overlay.Paths.
func (s *Scene) SubjectPaths() overlay.Paths {
	return toPaths(s.Subject)
}

// ClipPaths returns the scene's clip contours as overlay.Paths.
func (s *Scene) ClipPaths() overlay.Paths {
	return toPaths(s.Clip)
}

// CutterPath returns the scene's cutter polyline as an overlay.Path.
func (s *Scene) CutterPath() overlay.Path {
	return toPath(s.Cutter)
}

// Options builds an overlay.Options from the scene's configuration
// fields, validating the fill rule, overlay rule and solver strings
// against the overlay package's parsers. output_direction is not
// validated: "Clockwise" or "clockwise" selects clockwise output, and any
// other value leaves the counter-clockwise default.
func (s *Scene) Options() (overlay.Options, error) {
	opts := overlay.DefaultOptions()

	if s.FillRule != "" {
		fr, err := overlay.ParseFillRule(s.FillRule)
		if err != nil {
			return opts, err
		}
		opts.FillRule = fr
	}
	if s.OverlayRule != "" {
		or, err := overlay.ParseOverlayRule(s.OverlayRule)
		if err != nil {
			return opts, err
		}
		opts.OverlayRule = or
	}
	solver, err := overlay.ParseSolverType(s.Solver)
	if err != nil {
		return opts, err
	}
	opts.Solver = solver

	if s.OutputDirection == "Clockwise" || s.OutputDirection == "clockwise" {
		opts.OutputDirection = overlay.Clockwise
	}

	opts.MinOutputArea = s.MinOutputArea
	opts.PreserveInputCollinear = s.PreserveInput
	opts.PreserveOutputCollinear = s.PreserveOutput
	opts.OCG = s.OCG
	return opts, nil
}

// ClipRule builds an overlay.ClipRule from the scene's clip_invert /
// clip_boundary_included fields.
func (s *Scene) ClipRule() overlay.ClipRule {
	return overlay.ClipRule{Invert: s.ClipInvert, BoundaryIncluded: s.ClipBoundary}
}
