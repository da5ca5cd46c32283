package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-overlay/overlay"
	"github.com/go-overlay/overlay/internal/config"
)

var clipCmd = &cobra.Command{
	Use:   "clip SCENE",
	Short: "clip a scene's subject polygon to one side of its cutter polyline",
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

		shapes, err := overlay.ClipBy(scene.SubjectPaths(), scene.CutterPath(), scene.ClipRule(), opts)
		if err != nil {
			return err
		}
		return printShapes(shapes)
	},
}

func init() {
	RootCmd.AddCommand(clipCmd)
}
