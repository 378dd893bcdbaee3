// Package telemetry records the state of a crawler to CSV, one row per tick.
package telemetry

import (
	"fmt"
	"io"

	"github.com/adammck/crawler"
	"github.com/gocarina/gocsv"
)

// TickRecord is one row of the trace, taken at the end of a tick.
type TickRecord struct {
	Tick            int     `csv:"tick"`
	Time            float64 `csv:"time"`
	X               float64 `csv:"x"`
	Y               float64 `csv:"y"`
	Z               float64 `csv:"z"`
	Heading         float64 `csv:"heading"`
	Phase           int     `csv:"phase"`
	MustTurn        bool    `csv:"must_turn"`
	CanWalkStraight bool    `csv:"can_walk_straight"`
	TurnElapsed     float64 `csv:"turn_elapsed"`
	SinceSwitch     float64 `csv:"since_switch"`
	SinceStep       float64 `csv:"since_step"`
}

// Record captures the state as it will be once the current tick (of length
// dt) completes.
func Record(dt float64, s *crawler.State) TickRecord {
	return TickRecord{
		Tick:            s.Ticks + 1,
		Time:            s.Elapsed + dt,
		X:               s.Pose.Position.X,
		Y:               s.Pose.Position.Y,
		Z:               s.Pose.Position.Z,
		Heading:         s.Pose.Orientation.Heading(),
		Phase:           int(s.Gait.Phase),
		MustTurn:        s.Avoidance.MustTurn,
		CanWalkStraight: s.Avoidance.CanWalkStraight,
		TurnElapsed:     s.Avoidance.TurnElapsed,
		SinceSwitch:     s.Gait.SinceSwitch,
		SinceStep:       s.Gait.SinceStep,
	}
}

// Trace is a component which appends a record to w every tick. It should be
// added after every component which changes the state.
type Trace struct {
	w             io.Writer
	headerWritten bool
	rows          int
}

func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

func (t *Trace) Boot() error {
	return nil
}

func (t *Trace) Tick(dt float64, state *crawler.State) error {
	return t.Write(Record(dt, state))
}

// Write appends one record, preceded by the header if it's the first.
func (t *Trace) Write(r TickRecord) error {
	records := []TickRecord{r}

	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("%w (while writing trace)", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
			return fmt.Errorf("%w (while writing trace)", err)
		}
	}

	t.rows += 1
	return nil
}

// Rows returns the number of records written.
func (t *Trace) Rows() int {
	return t.rows
}
