package main

import (
	"context"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/quadsandbox/metrics"
	"github.com/milk9111/quadsandbox/prefabs"
)

var _ = reflect.TypeOf(config{})

type config struct {
	Debug       bool   `cli:"" env:"QUADSANDBOX_DEBUG"        help:"Highlight the hovered quadtree cell and show tree stats."`
	Fullscreen  bool   `cli:"" env:"QUADSANDBOX_FULLSCREEN"   help:"Start in fullscreen."`
	BaseMonitor bool   `cli:"" env:"-"                        help:"Use the base monitor instead of the primary (for multi-monitor setups)."`
	Spec        string `cli:"" env:"QUADSANDBOX_SPEC"         help:"Sandbox spec file in prefabs/."`
	Watch       bool   `cli:"" env:"QUADSANDBOX_WATCH"        help:"Hot reload prefabs/ when files change."`
	LogLevel    string `cli:"" env:"QUADSANDBOX_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	MetricsAddr string `cli:"" env:"QUADSANDBOX_METRICS_ADDR" help:"Listening address for Prometheus metrics; empty disables it."`
	Help        bool   `cli:"" env:"-"                        help:"Show help."`
}

func main() {
	conf := config{
		Spec:     prefabs.DefaultSandboxSpec,
		LogLevel: logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Quadtree visualization sandbox.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))

	if conf.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Quadtree Visualization")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(conf.Fullscreen)

	game, err := NewGame(ctx, conf, w, h)
	if err != nil {
		logs.Fatal(err)
	}
	defer game.Close()

	ebiten.SetTPS(game.spec.Frame.TargetFPS)

	if conf.MetricsAddr != "" {
		go metrics.ListenAndServe(ctx, metrics.NewServer(conf.MetricsAddr))
	}

	if err := ebiten.RunGame(game); err != nil {
		logs.Fatal(errors.New("game loop stopped").Wrap(err))
	}
}
