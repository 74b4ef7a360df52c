// Package app wires the services of the bank together and registers the
// event handlers they publish to.
package app

import (
	"github.com/amirasaad/minibank/pkg/handler/audit"
)

// setupEventBus registers all event handlers with the provided event Bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	logger := a.Deps.Logger
	if logger == nil {
		return
	}
	audit.Subscribe(bus, logger.With("component", "audit"))
}
