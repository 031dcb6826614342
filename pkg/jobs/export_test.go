package jobs

import "time"

func (s *Scheduler) SetNow(now func() time.Time) {
	s.now = now
}
