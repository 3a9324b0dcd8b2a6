package events

import (
	"github.com/schedsim/schedsim/logger"
)

// EventLogger writes events to a schedsim logger, producing the
// line-oriented, human-readable report of a run.
type EventLogger struct {
	Log *logger.Logger
}

// NewEventLogger creates an event logger writing to a sub-logger of log
// with the given namespace.
func NewEventLogger(log *logger.Logger, ns string) *EventLogger {
	return &EventLogger{Log: log.Sub(ns)}
}

// Write writes an event to the logger.
func (el *EventLogger) Write(ev *Event) error {
	switch ev.Type {
	case TypeAssigned:
		el.Log.Info("Task assigned",
			"step", ev.Step,
			"taskID", ev.TaskID,
			"nodeID", ev.NodeID,
			"startTime", ev.StartTime,
			"endTime", ev.EndTime,
			"deadline", ev.Deadline,
		)
	case TypeExpired:
		el.Log.Info("Task expired unscheduled",
			"step", ev.Step,
			"taskID", ev.TaskID,
			"deadline", ev.Deadline,
		)
	case TypePolicyUpdate:
		el.Log.Info("Policy updated",
			"step", ev.Step,
			"alpha", ev.Alpha,
			"beta", ev.Beta,
		)
	case TypeNodeSummary:
		el.Log.Info("Final node state",
			"nodeID", ev.NodeID,
			"load", ev.Load,
			"capacity", ev.Capacity,
			"taskIDs", ev.TaskIDs,
		)
	default:
		el.Log.Info(string(ev.Type), "event", ev)
	}
	return nil
}
