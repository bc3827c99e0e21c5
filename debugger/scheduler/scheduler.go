// This file is part of Xray.
//
// Xray is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Xray is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Xray.  If not, see <https://www.gnu.org/licenses/>.

// Package scheduler decides when the client of a debug session should be sent
// an update. Updates are sent periodically while the emulation is running and
// once more when the emulation stops. Nothing is sent while the emulation is
// idle.
package scheduler

import (
	"sync"
	"time"
)

// DefaultInterval is the minimum time between updates while running.
const DefaultInterval = 300 * time.Millisecond

// Scheduler is safe for concurrent use.
type Scheduler struct {
	crit     sync.Mutex
	interval time.Duration
	last     time.Time
}

// New is the preferred method of initialisation for the Scheduler type. An
// interval of zero or less selects DefaultInterval.
func New(interval time.Duration) *Scheduler {
	s := &Scheduler{}
	s.SetInterval(interval)
	return s
}

// SetInterval changes the minimum time between updates. An interval of zero
// or less selects DefaultInterval.
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.interval = interval
}

// Interval returns the minimum time between updates.
func (s *Scheduler) Interval() time.Duration {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.interval
}

// Due returns true if an update should be sent. An update is due if the
// emulation is halting or if it is running and the interval has elapsed since
// the last update.
func (s *Scheduler) Due(now time.Time, running bool, halting bool) bool {
	if halting {
		return true
	}
	if !running {
		return false
	}

	s.crit.Lock()
	defer s.crit.Unlock()
	return now.Sub(s.last) >= s.interval
}

// Flushed records the time of an update.
func (s *Scheduler) Flushed(now time.Time) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.last = now
}
