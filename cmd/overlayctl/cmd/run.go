package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-overlay/overlay"
	"github.com/go-overlay/overlay/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run SCENE",
	Short: "run a Boolean overlay from a scene file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := config.Load(args[0])
		if err != nil {
			return err
		}
		opts, err := scene.Options()
		if err != nil {
			return err
		}

		ov, err := overlay.New(opts)
		if err != nil {
			return err
		}
		ov.AddContours(overlay.Subject, scene.SubjectPaths())
		ov.AddContours(overlay.Clip, scene.ClipPaths())

		shapes, err := ov.Overlay()
		if err != nil {
			return err
		}
		return printShapes(shapes)
	},
}

// pointJSON is the wire form of an overlay.Point: lowercase field names,
// independent of the package's own exported X/Y fields.
type pointJSON struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// shapeJSON is the wire form of an overlay.Shape: an outer hull followed
// by its nested holes, each a closed ring of points.
type shapeJSON struct {
	Hull  []pointJSON   `json:"hull"`
	Holes [][]pointJSON `json:"holes"`
}

func toPointJSON(path overlay.Path) []pointJSON {
	out := make([]pointJSON, len(path))
	for i, p := range path {
		out[i] = pointJSON{X: p.X, Y: p.Y}
	}
	return out
}

// printShapes writes shapes to stdout as the shape tree's JSON encoding:
// a top-level array, one element per shape, each carrying its hull ring
// and its holes' rings.
func printShapes(shapes []overlay.Shape) error {
	out := make([]shapeJSON, len(shapes))
	for i, s := range shapes {
		holes := make([][]pointJSON, len(s.Holes))
		for j, h := range s.Holes {
			holes[j] = toPointJSON(h)
		}
		out[i] = shapeJSON{Hull: toPointJSON(s.Hull), Holes: holes}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	RootCmd.AddCommand(runCmd)
}
