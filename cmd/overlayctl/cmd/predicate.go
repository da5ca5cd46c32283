package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-overlay/overlay"
	"github.com/go-overlay/overlay/internal/config"
)

var predicateOpFlag string

var predicateCmd = &cobra.Command{
	Use:   "predicate SCENE",
	Short: "evaluate a spatial predicate between a scene's subject and clip contours",
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

		op, err := parsePredicateOp(predicateOpFlag)
		if err != nil {
			return err
		}

		ov, err := overlay.New(opts)
		if err != nil {
			return err
		}
		ov.AddContours(overlay.Subject, scene.SubjectPaths())
		ov.AddContours(overlay.Clip, scene.ClipPaths())

		result, err := ov.Predicate(op)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

func parsePredicateOp(s string) (overlay.PredicateOp, error) {
	switch s {
	case "intersects":
		return overlay.PredIntersects, nil
	case "interiors-intersect":
		return overlay.PredInteriorsIntersect, nil
	case "touches":
		return overlay.PredTouches, nil
	case "within":
		return overlay.PredWithin, nil
	case "disjoint":
		return overlay.PredDisjoint, nil
	case "covers":
		return overlay.PredCovers, nil
	default:
		return 0, overlay.ErrInvalidPredicateOp
	}
}

func init() {
	RootCmd.AddCommand(predicateCmd)
	predicateCmd.Flags().StringVar(&predicateOpFlag, "op", "intersects",
		"predicate to evaluate: intersects, interiors-intersect, touches, within, disjoint, covers")
}
