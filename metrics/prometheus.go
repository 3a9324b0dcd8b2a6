// Package metrics instruments simulation state with Prometheus
// collectors. Collectors are registered on a package-local registry so
// embedding applications control exposition; the simulator itself
// serves no endpoint.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/schedsim/schedsim/cluster"
)

// Registry holds all schedsim collectors.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(nodeLoad)
	Registry.MustRegister(nodeCapacity)
	Registry.MustRegister(tasksAssigned)
	Registry.MustRegister(tasksExpired)
}

var nodeLoad = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "schedsim",
		Subsystem: "nodes",
		Name:      "load",
		Help:      "Resources currently reserved on each node.",
	},
	[]string{"node"},
)

var nodeCapacity = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "schedsim",
		Subsystem: "nodes",
		Name:      "capacity",
		Help:      "Total resource capacity of each node.",
	},
	[]string{"node"},
)

var tasksAssigned = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "schedsim",
		Subsystem: "tasks",
		Name:      "assigned_total",
		Help:      "Number of tasks assigned to nodes.",
	},
)

var tasksExpired = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "schedsim",
		Subsystem: "tasks",
		Name:      "expired_total",
		Help:      "Number of tasks whose deadline passed while pending.",
	},
)

// ObserveNodes updates the per-node load and capacity gauges.
func ObserveNodes(reg *cluster.Registry) {
	for _, n := range reg.Nodes() {
		id := strconv.Itoa(n.ID)
		nodeLoad.WithLabelValues(id).Set(float64(n.Load))
		nodeCapacity.WithLabelValues(id).Set(float64(n.Capacity))
	}
}

// TasksAssigned counts tasks assigned during a step.
func TasksAssigned(n int) {
	tasksAssigned.Add(float64(n))
}

// TasksExpired counts tasks expired during a step.
func TasksExpired(n int) {
	tasksExpired.Add(float64(n))
}
