// Package application holds the unit the bootstrap hands control to.
package application

import (
	"github.com/rs/zerolog/log"
)

// ExitSuccess is the status reported when the application completes normally.
const ExitSuccess = 0

// Application performs the program's work and reports a single status.
type Application struct {
	name string
}

// New creates an Application. It needs no external input.
func New() *Application {
	return &Application{name: "gcmt"}
}

// Run executes the application once and returns its exit status.
func (a *Application) Run() int {
	log.Debug().Str("app", a.name).Msg("Application started")
	defer log.Debug().Str("app", a.name).Msg("Application stopped")

	return ExitSuccess
}
