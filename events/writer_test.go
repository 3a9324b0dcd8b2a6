package events

import (
	"fmt"
	"testing"

	"github.com/go-test/deep"
)

func TestCollector(t *testing.T) {
	col := &Collector{}

	evs := []*Event{
		Assigned(0, 1, 2, 0, 3, 5),
		PolicyUpdate(0, 1.0, 0.54),
		Expired(6, 3, 5),
	}
	for _, ev := range evs {
		if err := col.Write(ev); err != nil {
			t.Fatal(err)
		}
	}

	if diff := deep.Equal(col.Events, evs); diff != nil {
		t.Error("collector must keep events in order", diff)
	}

	assigned := col.ByType(TypeAssigned)
	if len(assigned) != 1 || assigned[0].TaskID != 1 || assigned[0].NodeID != 2 {
		t.Errorf("unexpected assigned events %+v", assigned)
	}
}

func TestMultiWriter(t *testing.T) {
	a := &Collector{}
	b := &Collector{}
	mw := MultiWriter(a, b, Discard)

	if err := mw.Write(Expired(1, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if len(a.Events) != 1 || len(b.Events) != 1 {
		t.Error("multiwriter must write to all writers")
	}
}

type failWriter struct{}

func (failWriter) Write(*Event) error {
	return fmt.Errorf("write failed")
}

func TestMultiWriterError(t *testing.T) {
	after := &Collector{}
	mw := MultiWriter(failWriter{}, after)

	if err := mw.Write(Expired(1, 0, 0)); err == nil {
		t.Error("expected error from failing writer")
	}
	if len(after.Events) != 0 {
		t.Error("write must stop at the first failing writer")
	}
}
