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

package govern

import (
	"context"
	"errors"
	"sync"

	"github.com/trs-io/xray/logger"
	"go.uber.org/atomic"
)

// Dispatcher carries out an action on behalf of the Controller. Actions that
// take an indeterminate length of time, Continue and StepOver in particular,
// must return when the context is cancelled.
type Dispatcher interface {
	Dispatch(ctx context.Context, a Action) error
}

// DispatcherFunc allows an ordinary function to be used as a Dispatcher.
type DispatcherFunc func(ctx context.Context, a Action) error

// Dispatch implements the Dispatcher interface.
func (f DispatcherFunc) Dispatch(ctx context.Context, a Action) error {
	return f(ctx, a)
}

// Controller holds the pending action and the run state. Safe for concurrent
// use.
type Controller struct {
	crit    sync.Mutex
	pending Action
	state   State

	// wakes the executor. buffered with a capacity of one so that any number
	// of requests result in at most one wake up
	wake chan struct{}

	// cancels the action currently being carried out. nil if there is no
	// such action
	cancel context.CancelFunc

	// closed when the continue goroutine ends. nil if not continuing
	continuing chan struct{}

	running atomic.Bool
	halting atomic.Bool
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{
		wake: make(chan struct{}, 1),
	}
}

// Request an action. Any action that has been requested but not yet taken by
// the executor is forgotten.
//
// Halt and Pause requests cancel the action in progress immediately, without
// waiting for the executor.
func (c *Controller) Request(a Action) {
	if a == None {
		return
	}

	c.crit.Lock()
	c.pending = a
	if c.state == Idle {
		c.state = ActionPending
	}
	if a.Stops() && c.cancel != nil {
		c.cancel()
	}
	c.crit.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Pending returns the action that is waiting to be taken by the executor.
func (c *Controller) Pending() Action {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.pending
}

// State returns the current state of the controller.
func (c *Controller) State() State {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.state
}

// Running returns true while a Continue action is in progress.
func (c *Controller) Running() bool {
	return c.running.Load()
}

// Halting returns true if execution has stopped and the client has not yet
// been updated.
func (c *Controller) Halting() bool {
	return c.halting.Load()
}

// TakeHalting returns the halting flag and clears it.
func (c *Controller) TakeHalting() bool {
	return c.halting.Swap(false)
}

// Run the executor loop. Blocks until the context is cancelled. Any Continue
// action in progress is stopped before returning.
func (c *Controller) Run(ctx context.Context, d Dispatcher) error {
	defer c.stopContinue()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.wake:
		}

		for a := c.take(); a != None; a = c.take() {
			c.dispatch(ctx, a, d)
		}
	}
}

// take the pending action and update the state. returns None if there is
// nothing pending, in which case the controller is now Idle.
func (c *Controller) take() Action {
	c.crit.Lock()
	defer c.crit.Unlock()

	a := c.pending
	c.pending = None
	if a == None {
		c.state = Idle
	} else {
		c.state = Dispatching
	}
	return a
}

func (c *Controller) dispatch(ctx context.Context, a Action, d Dispatcher) {
	if a == Continue {
		if c.running.Load() {
			logger.Log(logger.Allow, "debugger", "continue ignored: already running")
			return
		}
		c.startContinue(ctx, d)
		return
	}

	// any other action stops a continue that is in progress
	c.stopContinue()

	actx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.crit.Lock()
	c.cancel = cancel
	c.crit.Unlock()

	err := d.Dispatch(actx, a)

	c.crit.Lock()
	c.cancel = nil
	c.crit.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Logf(logger.Allow, "debugger", "%s: %v", a, err)
	}

	if a.Stops() {
		c.halting.Store(true)
	}
}

func (c *Controller) startContinue(ctx context.Context, d Dispatcher) {
	cctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.crit.Lock()
	c.cancel = cancel
	c.continuing = done
	c.crit.Unlock()

	c.running.Store(true)

	go func() {
		defer close(done)

		err := d.Dispatch(cctx, Continue)
		cancel()

		c.crit.Lock()
		c.cancel = nil
		c.continuing = nil
		c.crit.Unlock()

		// halting must be set before running is cleared
		c.halting.Store(true)
		c.running.Store(false)

		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Logf(logger.Allow, "debugger", "continue: %v", err)
		}
	}()
}

// stopContinue cancels the continue goroutine and waits for it to end.
func (c *Controller) stopContinue() {
	c.crit.Lock()
	done := c.continuing
	cancel := c.cancel
	c.crit.Unlock()

	if done == nil {
		return
	}

	cancel()
	<-done
}
