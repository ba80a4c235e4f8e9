package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadSandboxSpecEmbedded(t *testing.T) {
	spec, err := LoadSandboxSpec("")
	require.NoError(t, err)

	require.Equal(t, "sandbox", spec.Name)
	require.Equal(t, 3, spec.Quadtree.Depth)
	require.Equal(t, CameraSpec{
		Zoom:          1,
		ScrollSpeed:   5,
		EdgeThreshold: 70,
		ZoomStep:      0.05,
		MinZoom:       0.1,
		Overscan:      1.5,
	}, spec.Camera)
	require.Equal(t, 30.0, spec.Unit.Radius)
	require.Equal(t, 60, spec.Frame.TargetFPS)
	require.Equal(t, "palette.tengo", spec.Palette.Script)
	require.Equal(t, color.NRGBA{A: 255}, spec.BackgroundColor())
}

func TestLoadSandboxSpecMissing(t *testing.T) {
	_, err := LoadSandboxSpec("does-not-exist.yaml")
	require.Error(t, err)
}

func TestDefaultSandbox(t *testing.T) {
	spec := DefaultSandbox()

	require.Equal(t, 3, spec.Quadtree.Depth)
	require.Equal(t, 1.0, spec.Camera.Zoom)
	require.Equal(t, 0.1, spec.Camera.MinZoom)
	require.Equal(t, 70, spec.Camera.EdgeThreshold)
	require.Equal(t, 30.0, spec.Unit.Radius)
	require.Equal(t, 60, spec.Frame.TargetFPS)
	require.NoError(t, spec.Validate())
	require.Equal(t, color.Black, spec.BackgroundColor())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *SandboxSpec)
	}{
		{"negative_depth", func(s *SandboxSpec) { s.Quadtree.Depth = -1 }},
		{"negative_min_zoom", func(s *SandboxSpec) { s.Camera.MinZoom = -0.1 }},
		{"negative_zoom", func(s *SandboxSpec) { s.Camera.Zoom = -2 }},
		{"negative_scroll_speed", func(s *SandboxSpec) { s.Camera.ScrollSpeed = -1 }},
		{"negative_edge_threshold", func(s *SandboxSpec) { s.Camera.EdgeThreshold = -70 }},
		{"negative_zoom_step", func(s *SandboxSpec) { s.Camera.ZoomStep = -0.05 }},
		{"zero_overscan", func(s *SandboxSpec) { s.Camera.Overscan = 0 }},
		{"negative_radius", func(s *SandboxSpec) { s.Unit.Radius = -30 }},
		{"negative_fps", func(s *SandboxSpec) { s.Frame.TargetFPS = -60 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := DefaultSandbox()
			c.mutate(&spec)
			require.Error(t, spec.Validate())
		})
	}
}

func writeDiskSpec(t *testing.T, name, body string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, Dir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, name), []byte(body), 0o644))
}

func TestLoadSandboxSpecKeepsExplicitZero(t *testing.T) {
	writeDiskSpec(t, "still.yaml", "camera:\n  scroll_speed: 0\n  edge_threshold: 0\n  zoom_step: 0\n")

	spec, err := LoadSandboxSpec("still.yaml")
	require.NoError(t, err)
	require.Equal(t, 0.0, spec.Camera.ScrollSpeed)
	require.Equal(t, 0, spec.Camera.EdgeThreshold)
	require.Equal(t, 0.0, spec.Camera.ZoomStep)

	// omitted keys keep the built-in values
	require.Equal(t, 1.0, spec.Camera.Zoom)
	require.Equal(t, 0.1, spec.Camera.MinZoom)
	require.Equal(t, 3, spec.Quadtree.Depth)
	require.Equal(t, 30.0, spec.Unit.Radius)
}

func TestLoadSandboxSpecRejectsInvalid(t *testing.T) {
	writeDiskSpec(t, "bad.yaml", "unit:\n  radius: 0\n")

	_, err := LoadSandboxSpec("bad.yaml")
	require.Error(t, err)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: `"#102030"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `"#123"`, wantErr: true},
		{in: `"#zzzzzz"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, got.Color)
		})
	}
}

func TestCleanPaths(t *testing.T) {
	require.Equal(t, "sandbox.yaml", cleanPrefabPath("prefabs/sandbox.yaml"))
	require.Equal(t, "sandbox.yaml", cleanPrefabPath("sandbox.yaml"))
	require.Equal(t, "scripts/palette.tengo", cleanScriptPath("prefabs/scripts/palette.tengo"))
	require.Equal(t, "scripts/palette.tengo", cleanScriptPath("scripts/palette.tengo"))
	require.Equal(t, "scripts/palette.tengo", cleanScriptPath("palette.tengo"))
}

func TestLoadScriptEmbedded(t *testing.T) {
	src, err := LoadScript("palette.tengo")
	require.NoError(t, err)
	require.Contains(t, string(src), "rgb")
}
