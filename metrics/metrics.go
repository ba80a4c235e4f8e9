package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	frameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quadsandbox_frame_duration_seconds",
		Help:    "Time spent dispatching input and rendering a frame.",
		Buckets: []float64{.001, .002, .004, .008, .0167, .033, .066, .1},
	})

	frameOverruns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadsandbox_frame_overruns_total",
		Help: "Frames that exceeded the target frame budget.",
	})

	cameraZoom = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quadsandbox_camera_zoom",
		Help: "Current camera zoom factor.",
	})

	quadtreeNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quadsandbox_quadtree_nodes",
		Help: "Number of nodes in the displayed quadtree.",
	})

	unitMoves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadsandbox_unit_moves_total",
		Help: "Times the selected unit was moved.",
	})
)

// ObserveFrame records a frame's work time and whether it overran the budget.
func ObserveFrame(elapsed time.Duration, overrun bool) {
	frameDuration.Observe(elapsed.Seconds())
	if overrun {
		frameOverruns.Inc()
	}
}

func SetZoom(z float64) {
	cameraZoom.Set(z)
}

func SetNodeCount(n int) {
	quadtreeNodes.Set(float64(n))
}

func UnitMoved() {
	unitMoves.Inc()
}
