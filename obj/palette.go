package obj

import (
	"image/color"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/quadsandbox/common"
	"golang.org/x/image/colornames"
)

// Palette maps a quadtree depth to its outline color.
type Palette interface {
	Color(depth int) color.Color
}

// DefaultPalette marks depth 0 red, even depths lime and odd depths blue.
type DefaultPalette struct{}

func (DefaultPalette) Color(depth int) color.Color {
	switch {
	case depth == 0:
		return colornames.Red
	case depth%2 == 0:
		return colornames.Lime
	default:
		return colornames.Blue
	}
}

// ScriptPalette evaluates a tengo script that reads `depth` and assigns an
// `rgb` array of three 0..255 channels. Results are cached per depth.
type ScriptPalette struct {
	name     string
	compiled *tengo.Compiled
	cache    map[int]color.Color
	fallback Palette
}

func NewScriptPalette(name string, src []byte) (*ScriptPalette, error) {
	script := tengo.NewScript(src)
	if err := script.Add("depth", 0); err != nil {
		return nil, errors.New("palette: add depth").WithTag("script", name).Wrap(err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, errors.New("palette: compile").WithTag("script", name).Wrap(err)
	}

	return &ScriptPalette{
		name:     name,
		compiled: compiled,
		cache:    make(map[int]color.Color),
		fallback: DefaultPalette{},
	}, nil
}

func (p *ScriptPalette) Color(depth int) color.Color {
	if c, ok := p.cache[depth]; ok {
		return c
	}

	c, err := p.eval(depth)
	if err != nil {
		logs.Warn(errors.New("palette: falling back to default colors").
			WithTag("script", p.name).
			WithTag("depth", depth).
			Wrap(err))
		c = p.fallback.Color(depth)
	}
	p.cache[depth] = c
	return c
}

func (p *ScriptPalette) eval(depth int) (color.Color, error) {
	if err := p.compiled.Set("depth", depth); err != nil {
		return nil, err
	}
	if err := p.compiled.Run(); err != nil {
		return nil, err
	}
	if !p.compiled.IsDefined("rgb") {
		return nil, errors.New("script does not define rgb")
	}

	channels := p.compiled.Get("rgb").Array()
	if len(channels) != 3 {
		return nil, errors.Newf("rgb must have 3 channels, got %d", len(channels))
	}

	var rgb [3]uint8
	for i, ch := range channels {
		var v float64
		switch n := ch.(type) {
		case int64:
			v = float64(n)
		case float64:
			v = n
		default:
			return nil, errors.Newf("rgb channel %d is %T", i, ch)
		}
		rgb[i] = uint8(common.Clamp(v, 0, 255))
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}
