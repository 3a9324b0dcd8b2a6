// Package sim contains the simulation driver: the discrete time-step
// loop that releases finished tasks, invokes the scheduler over pending
// tasks, reports observations, and adapts the policy parameters.
package sim

import (
	"context"
	"fmt"

	"github.com/schedsim/schedsim/cluster"
	"github.com/schedsim/schedsim/config"
	"github.com/schedsim/schedsim/events"
	"github.com/schedsim/schedsim/logger"
	"github.com/schedsim/schedsim/metrics"
	"github.com/schedsim/schedsim/scheduler"
)

// Driver advances simulated time over a fixed node registry and task
// ledger. It owns all simulation state for the duration of a run;
// execution is strictly sequential.
type Driver struct {
	conf config.Config
	reg  *cluster.Registry
	led  *cluster.Ledger
	pol  scheduler.Policy
	ev   events.Writer
	log  *logger.Logger
}

// Result summarizes a completed run.
type Result struct {
	Assigned    int
	Expired     int
	FinalPolicy scheduler.Policy
}

// NewDriver returns a Driver over the given registry and ledger.
// Observations are written to ev; pass events.Discard to silence them.
func NewDriver(conf config.Config, reg *cluster.Registry, led *cluster.Ledger, ev events.Writer, log *logger.Logger) *Driver {
	return &Driver{
		conf: conf,
		reg:  reg,
		led:  led,
		pol:  scheduler.DefaultPolicy(),
		ev:   ev,
		log:  log.Sub("driver"),
	}
}

// Policy returns the policy parameters currently in effect.
func (d *Driver) Policy() scheduler.Policy {
	return d.pol
}

// Run executes the simulation from step 0 to the configured horizon.
// It returns early if the context is canceled.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	for now := 0; now < d.conf.Sim.SimulationTime; now++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if err := d.step(now, res); err != nil {
			return res, err
		}
	}

	// Tasks whose end time lies past the horizon legitimately remain
	// scheduled; the summary reports the residual state.
	for _, n := range d.reg.Nodes() {
		ev := events.NodeSummary(n.ID, n.Load, n.Capacity, n.TaskIDs())
		if err := d.ev.Write(ev); err != nil {
			return res, fmt.Errorf("sim: writing node summary: %w", err)
		}
	}

	res.FinalPolicy = d.pol
	return res, nil
}

// step runs one time step: release, expire, schedule, report, adapt.
func (d *Driver) step(now int, res *Result) error {
	released := d.reg.ReleaseFinished(now)
	if len(released) > 0 {
		d.log.Debug("Released finished tasks", "step", now, "count", len(released))
	}

	expired := d.led.ExpireOverdue(now)
	for _, t := range expired {
		if err := d.ev.Write(events.Expired(now, t.ID, t.Deadline)); err != nil {
			return fmt.Errorf("sim: writing expiry: %w", err)
		}
	}
	res.Expired += len(expired)
	metrics.TasksExpired(len(expired))

	pending := d.led.Pending(now)
	d.log.Debug("Starting step", "step", now, "pending", len(pending))

	offers, err := scheduler.Schedule(pending, d.reg, d.led, now, d.pol)
	if err != nil {
		return fmt.Errorf("sim: step %d: %w", now, err)
	}

	for _, o := range offers {
		t := d.led.Get(o.TaskID)
		ev := events.Assigned(now, t.ID, t.AssignedNode, t.StartTime, t.EndTime, t.Deadline)
		if err := d.ev.Write(ev); err != nil {
			return fmt.Errorf("sim: writing assignment: %w", err)
		}
	}
	res.Assigned += len(offers)
	metrics.TasksAssigned(len(offers))

	d.pol = d.pol.Adapt(d.reg.AverageLoad())
	if err := d.ev.Write(events.PolicyUpdate(now, d.pol.Alpha, d.pol.Beta)); err != nil {
		return fmt.Errorf("sim: writing policy update: %w", err)
	}

	metrics.ObserveNodes(d.reg)
	return nil
}
