package obj

import (
	"image/color"
	"testing"

	"github.com/milk9111/quadsandbox/prefabs"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette{}
	require.Equal(t, colornames.Red, p.Color(0))
	require.Equal(t, colornames.Blue, p.Color(1))
	require.Equal(t, colornames.Lime, p.Color(2))
	require.Equal(t, colornames.Blue, p.Color(3))
	require.Equal(t, colornames.Lime, p.Color(4))
}

func TestScriptPaletteMatchesDefault(t *testing.T) {
	src, err := prefabs.LoadScript("palette.tengo")
	require.NoError(t, err)

	p, err := NewScriptPalette("palette.tengo", src)
	require.NoError(t, err)

	for depth := 0; depth <= 6; depth++ {
		require.Equal(t, rgba(DefaultPalette{}.Color(depth)), rgba(p.Color(depth)), "depth %d", depth)
	}
}

func TestScriptPaletteCachesAndClamps(t *testing.T) {
	p, err := NewScriptPalette("gradient", []byte(`rgb := [depth * 100, 300 - depth, -5.5]`))
	require.NoError(t, err)

	require.Equal(t, color.RGBA{R: 200, G: 255, B: 0, A: 255}, p.Color(2))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 0, A: 255}, p.Color(3))
	require.Len(t, p.cache, 2)
}

func TestScriptPaletteFallsBack(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing_rgb", `x := depth`},
		{"wrong_length", `rgb := [1, 2]`},
		{"wrong_type", `rgb := ["a", "b", "c"]`},
		{"out_of_range_index", `rgb := [1, 2, 3][depth + 5]`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewScriptPalette(c.name, []byte(c.src))
			require.NoError(t, err)
			require.Equal(t, DefaultPalette{}.Color(1), p.Color(1))
		})
	}
}

func TestScriptPaletteCompileError(t *testing.T) {
	_, err := NewScriptPalette("broken", []byte(`rgb := [`))
	require.Error(t, err)
}
