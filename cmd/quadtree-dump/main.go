package main

import (
	"io"
	"os"
	"sort"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/milk9111/quadsandbox/common"
	"github.com/milk9111/quadsandbox/obj"
	"github.com/milk9111/quadsandbox/prefabs"
	"gopkg.in/yaml.v3"
)

type config struct {
	Width  float64 `cli:"" env:"-" help:"Root width in world units."`
	Height float64 `cli:"" env:"-" help:"Root height in world units."`
	Depth  int     `cli:"" env:"-" help:"Root depth; negative uses the sandbox spec."`
	Spec   string  `cli:"" env:"-" help:"Sandbox spec file in prefabs/."`
	Help   bool    `cli:"" env:"-" help:"Show help."`
}

type levelStats struct {
	Depth      int     `yaml:"depth"`
	Nodes      int     `yaml:"nodes"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

type treeStats struct {
	Bounds common.Rect  `yaml:"bounds"`
	Depth  int          `yaml:"depth"`
	Nodes  int          `yaml:"nodes"`
	Leaves int          `yaml:"leaves"`
	Levels []levelStats `yaml:"levels"`
}

func main() {
	conf := config{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		Depth:  -1,
		Spec:   prefabs.DefaultSandboxSpec,
	}

	cli.Register().
		Help("Builds a quadtree and prints its per-level stats as YAML.").
		Options(&conf)
	cli.Load()

	depth := conf.Depth
	if depth < 0 {
		spec, err := prefabs.LoadSandboxSpec(conf.Spec)
		if err != nil {
			logs.Fatal(errors.New("load sandbox spec").WithTag("spec", conf.Spec).Wrap(err))
		}
		depth = spec.Quadtree.Depth
	}

	tree := obj.BuildQuadtree(common.Rect{Width: conf.Width, Height: conf.Height}, depth)
	if err := writeStats(os.Stdout, collectStats(tree)); err != nil {
		logs.Fatal(errors.New("write stats").Wrap(err))
	}
}

func collectStats(tree *obj.Quadtree) treeStats {
	cells := make(map[int]common.Rect)
	tree.Walk(func(n *obj.Quadtree) {
		if _, ok := cells[n.Depth]; !ok {
			cells[n.Depth] = n.Bounds
		}
	})

	stats := treeStats{
		Bounds: tree.Bounds,
		Depth:  tree.Depth,
		Nodes:  tree.Count(),
		Leaves: len(tree.Leaves()),
	}
	for depth, count := range tree.Levels() {
		stats.Levels = append(stats.Levels, levelStats{
			Depth:      depth,
			Nodes:      count,
			CellWidth:  cells[depth].Width,
			CellHeight: cells[depth].Height,
		})
	}
	sort.Slice(stats.Levels, func(i, j int) bool {
		return stats.Levels[i].Depth > stats.Levels[j].Depth
	})
	return stats
}

func writeStats(w io.Writer, stats treeStats) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(stats); err != nil {
		return err
	}
	return enc.Close()
}
