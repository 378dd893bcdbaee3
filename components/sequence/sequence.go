package sequence

import (
	"github.com/adammck/crawler"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "sequence",
})

// Hook is called every time the interval passes, with the total time elapsed
// since the first tick.
type Hook func(elapsed float64)

// Sequencer fires a hook at a fixed cadence, for animation sequencing which
// runs slower than the gait. With no hook it does nothing observable.
type Sequencer struct {
	interval float64
	hook     Hook

	since   float64
	elapsed float64
	fired   int
}

func New(interval float64, hook Hook) *Sequencer {
	return &Sequencer{
		interval: interval,
		hook:     hook,
	}
}

func (s *Sequencer) Boot() error {
	return nil
}

func (s *Sequencer) Tick(dt float64, state *crawler.State) error {
	s.since += dt
	s.elapsed += dt

	if s.interval <= 0 || s.since < s.interval {
		return nil
	}

	s.since -= s.interval
	s.fired += 1
	log.Debugf("sequence #%d at t=%.2f", s.fired, s.elapsed)

	if s.hook != nil {
		s.hook(s.elapsed)
	}

	return nil
}

// Fired returns the number of times the interval has passed.
func (s *Sequencer) Fired() int {
	return s.fired
}
