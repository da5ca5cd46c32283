package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-overlay/overlay"
	"github.com/go-overlay/overlay/internal/config"
)

var sliceCmd = &cobra.Command{
	Use:   "slice SCENE",
	Short: "partition a scene's subject polygon by its cutter polyline",
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

		shapes, err := overlay.SliceBy(scene.SubjectPaths(), scene.CutterPath(), opts)
		if err != nil {
			return err
		}
		return printShapes(shapes)
	},
}

func init() {
	RootCmd.AddCommand(sliceCmd)
}
