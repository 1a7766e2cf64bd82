package planner

import (
	"fmt"

	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

type inputs struct {
	specs      performance.Specs
	title      string
	target     int
	budget     float64
	cpuPerf    float64
	gpuPerf    float64
	ramGB      int
	bottleneck Component
}

// option is one canonical purchase of the deterministic plan
type option struct {
	component Component
	name      string
	price     float64
	fpsGain   string
	link      string

	offered  func(in inputs) bool
	priority func(in inputs) upgrade.Priority
	current  func(in inputs) string
	reason   func(in inputs) string
}

// options is evaluated in order: GPU, CPU, RAM
var options = []option{
	{
		component: ComponentGPU,
		name:      "NVIDIA RTX 4060 Ti 8GB",
		price:     450,
		fpsGain:   "+40-50 FPS",
		link:      "https://www.amazon.com/s?k=RTX+4060+Ti",
		offered: func(in inputs) bool {
			return in.gpuPerf < 250 && in.budget >= 400
		},
		priority: bottleneckPriority(ComponentGPU),
		current:  func(in inputs) string { return in.specs.GPU },
		reason: func(in inputs) string {
			return fmt.Sprintf("NVIDIA RTX 4060 Ti 8GB is a strong current-generation card for %s. "+
				"It holds a steady %d+ FPS on high settings with modern upscaling support.", in.title, in.target)
		},
	},
	{
		component: ComponentCPU,
		name:      "AMD Ryzen 7 7800X3D",
		price:     380,
		fpsGain:   "+25-35 FPS",
		link:      "https://www.amazon.com/s?k=Ryzen+7+7800X3D",
		offered: func(in inputs) bool {
			return in.cpuPerf < 200 && in.budget >= 250
		},
		priority: bottleneckPriority(ComponentCPU),
		current:  func(in inputs) string { return in.specs.CPU },
		reason: func(in inputs) string {
			return fmt.Sprintf("AMD Ryzen 7 7800X3D is a top gaming processor with 3D V-Cache. "+
				"Its large cache suits %s, where cache size matters for frame times.", in.title)
		},
	},
	{
		component: ComponentRAM,
		name:      "32GB DDR4 3200MHz (2x16GB)",
		price:     85,
		fpsGain:   "+10-15 FPS",
		link:      "https://www.amazon.com/s?k=32GB+DDR4+3200MHz",
		offered: func(in inputs) bool {
			return in.ramGB < 32 && in.budget >= 80
		},
		priority: func(in inputs) upgrade.Priority {
			if in.ramGB < RAMBottleneckGB {
				return upgrade.PriorityHigh
			}
			return upgrade.PriorityLow
		},
		current: func(in inputs) string { return in.specs.RAM },
		reason: func(inputs) string {
			return "32GB of RAM keeps the game smooth without FPS drops while textures and levels load. " +
				"Modern games make heavy use of 16GB and more."
		},
	},
}

func bottleneckPriority(c Component) func(in inputs) upgrade.Priority {
	return func(in inputs) upgrade.Priority {
		if in.bottleneck == c {
			return upgrade.PriorityHigh
		}
		return upgrade.PriorityMedium
	}
}

func (o option) recommend(in inputs) Recommendation {
	return Recommendation{
		Component:        string(o.component),
		Name:             o.name,
		CurrentComponent: o.current(in),
		Price:            o.price,
		Reason:           o.reason(in),
		FPSGain:          o.fpsGain,
		Priority:         o.priority(in),
		Link:             o.link,
	}
}
