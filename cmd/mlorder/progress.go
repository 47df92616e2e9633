// SPDX-License-Identifier: MIT
package main

import (
	"sync/atomic"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/linorder/core"
	"github.com/katalvlaran/linorder/numeric"
)

// cliProgress is the CLI's concrete core.Progress: it logs phase and
// iteration boundaries through charmbracelet/log as leveled, timestamped
// stderr lines, and exposes a signal-driven cancellation flag (see main's
// ctx.Done watcher).
type cliProgress struct {
	log       *charmlog.Logger
	start     time.Time
	cancelled atomic.Bool
}

func newCLIProgress(l *charmlog.Logger) *cliProgress {
	return &cliProgress{log: l}
}

// cancel flips the cancellation flag Cancel() reports; called once from
// main's signal-context watcher, never from engine code.
func (p *cliProgress) cancel() { p.cancelled.Store(true) }

func (p *cliProgress) Cancel() bool { return p.cancelled.Load() }

func (p *cliProgress) BeginOrder(g *core.Graph, cost numeric.F) {
	p.start = time.Now()
	p.log.Infof("beginorder nodes=%d cost=%g", g.Nodes(), cost)
}

func (p *cliProgress) EndOrder(g *core.Graph, cost numeric.F) {
	p.log.Infof("endorder cost=%g elapsed=%s", cost, time.Since(p.start).Round(time.Millisecond))
}

func (p *cliProgress) BeginIter(_ *core.Graph, iter, maxIter, window int) {
	p.log.Debugf("beginiter %d/%d window=%d", iter, maxIter, window)
}

func (p *cliProgress) EndIter(_ *core.Graph, minCost, cost numeric.F) {
	p.log.Debugf("enditer cost=%g best=%g", cost, minCost)
}

func (p *cliProgress) BeginPhase(_ *core.Graph, name string) {
	p.log.Debugf("beginphase %s", name)
}

func (p *cliProgress) EndPhase(_ *core.Graph, show bool) {
	p.log.Debugf("endphase show=%v", show)
}
