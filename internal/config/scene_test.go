package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-overlay/overlay"
)

const sampleScene = `
fill_rule: NonZero
overlay_rule: Union
solver: List
min_output_area: 0.5
subject:
  - - {x: 0, y: 0}
    - {x: 10, y: 0}
    - {x: 10, y: 10}
    - {x: 0, y: 10}
clip:
  - - {x: 5, y: 5}
    - {x: 15, y: 5}
    - {x: 15, y: 15}
    - {x: 5, y: 15}
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, sampleScene)
	scene, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, scene.Subject, 1)
	assert.Len(t, scene.Clip, 1)

	opts, err := scene.Options()
	require.NoError(t, err)
	assert.Equal(t, overlay.NonZero, opts.FillRule)
	assert.Equal(t, overlay.RuleUnion, opts.OverlayRule)
	assert.Equal(t, overlay.SolverList, opts.Solver)
	assert.InDelta(t, 0.5, opts.MinOutputArea, 1e-9)
}

func TestSceneRejectsInvalidFillRule(t *testing.T) {
	path := writeScene(t, "fill_rule: NotARule\n")
	scene, err := Load(path)
	require.NoError(t, err)

	_, err = scene.Options()
	assert.ErrorIs(t, err, overlay.ErrInvalidFillRule)
}

func TestSubjectAndClipPathsRoundTrip(t *testing.T) {
	path := writeScene(t, sampleScene)
	scene, err := Load(path)
	require.NoError(t, err)

	subj := scene.SubjectPaths()
	require.Len(t, subj, 1)
	assert.Equal(t, overlay.Point{X: 0, Y: 0}, subj[0][0])

	clip := scene.ClipPaths()
	require.Len(t, clip, 1)
	assert.Equal(t, overlay.Point{X: 5, Y: 5}, clip[0][0])
}
