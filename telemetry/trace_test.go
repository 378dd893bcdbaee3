package telemetry

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderWrittenOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := NewTrace(buf)
	s := crawler.NewState(math3d.MakePose(math3d.Vector3{X: 1, Z: 2}, 90), crawler.Joints{})

	for i := 0; i < 3; i++ {
		require.NoError(t, tr.Tick(0.5, s))
		s.Ticks += 1
		s.Elapsed += 0.5
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "tick,time,x,y,z,heading,phase"))
	assert.Equal(t, 1, strings.Count(buf.String(), "tick,"))
	assert.Equal(t, 3, tr.Rows())

	var recs []TickRecord
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &recs))
	require.Len(t, recs, 3)

	assert.Equal(t, 1, recs[0].Tick)
	assert.InDelta(t, 0.5, recs[0].Time, 1e-12)
	assert.Equal(t, 3, recs[2].Tick)
	assert.InDelta(t, 1.5, recs[2].Time, 1e-12)
	assert.InDelta(t, 1, recs[2].X, 1e-12)
	assert.InDelta(t, 90, recs[2].Heading, 1e-9)
	assert.True(t, recs[2].CanWalkStraight)
	assert.False(t, recs[2].MustTurn)
}

func TestRecord(t *testing.T) {
	s := crawler.NewState(math3d.MakePose(math3d.ZeroVector3, 0), crawler.Joints{})
	s.Gait.Phase = 1
	s.Gait.SinceStep = 0.2
	s.Avoidance = crawler.AvoidanceState{MustTurn: true, TurnElapsed: 0.75}

	r := Record(0.1, s)
	assert.Equal(t, 1, r.Tick)
	assert.Equal(t, 1, r.Phase)
	assert.True(t, r.MustTurn)
	assert.False(t, r.CanWalkStraight)
	assert.Equal(t, 0.75, r.TurnElapsed)
	assert.Equal(t, 0.2, r.SinceStep)
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	tr := NewTrace(brokenWriter{})
	err := tr.Write(TickRecord{})
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 0, tr.Rows())
}
