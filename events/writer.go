package events

// Writer provides write access to the simulation's event stream.
type Writer interface {
	Write(*Event) error
}

type multiwriter []Writer

// MultiWriter writes events to all the given writers.
func MultiWriter(ws ...Writer) Writer {
	return multiwriter(ws)
}

// Write writes an event to all the writers.
func (mw multiwriter) Write(ev *Event) error {
	for _, w := range mw {
		if err := w.Write(ev); err != nil {
			return err
		}
	}
	return nil
}

type discard struct{}

func (discard) Write(*Event) error {
	return nil
}

// Discard is a writer which discards all events.
var Discard = discard{}

// Collector is a writer which collects events in memory. Useful in tests.
type Collector struct {
	Events []*Event
}

// Write appends the event to the collector.
func (c *Collector) Write(ev *Event) error {
	c.Events = append(c.Events, ev)
	return nil
}

// ByType returns the collected events of the given type, in order.
func (c *Collector) ByType(t Type) []*Event {
	var out []*Event
	for _, ev := range c.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
