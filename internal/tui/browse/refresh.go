package browse

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler signals on C at every activation of a cron schedule. A signal
// that has not been read yet absorbs later ones, so a slow view never queues
// up reloads.
type Scheduler struct {
	cron *cron.Cron
	c    chan struct{}
}

// NewScheduler parses spec ("@every 30s", "*/5 * * * *"). Call Start to run it.
func NewScheduler(spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		c:    make(chan struct{}, 1),
	}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule '%s': %w", spec, err)
	}
	return s, nil
}

// C delivers the activations.
func (s *Scheduler) C() <-chan struct{} { return s.c }

// Start runs the schedule in the background.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the schedule and waits for a running activation to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) tick() {
	select {
	case s.c <- struct{}{}:
	default:
	}
}
