// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
)

// relay catches relayedSignals while a child runs so the launcher outlives
// them, and forwards every one except os.Interrupt to the child.
type relay struct {
	ch     chan os.Signal
	done   chan struct{}
	exited chan struct{}
}

// startRelay begins catching signals for proc. Call stop once the child exited.
func startRelay(proc *os.Process, logger *log.Logger) *relay {
	r := &relay{
		ch:     make(chan os.Signal, len(relayedSignals)),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	signal.Notify(r.ch, relayedSignals...)

	go func() {
		defer close(r.exited)
		for {
			select {
			case sig := <-r.ch:
				if sig == os.Interrupt {
					logger.Debug("interrupt received, waiting for child", "pid", proc.Pid)
					continue
				}
				logger.Debug("forwarding signal", "signal", sig, "pid", proc.Pid)
				if err := proc.Signal(sig); err != nil {
					logger.Debug("signal forwarding failed", "signal", sig, "err", err)
				}
			case <-r.done:
				return
			}
		}
	}()

	return r
}

// stop restores default signal handling and waits for the relay goroutine.
func (r *relay) stop() {
	signal.Stop(r.ch)
	close(r.done)
	<-r.exited
}
