// Package bootstrap sequences a process run: resolve the working directory,
// report it, then hand control to a single Application and return its status.
package bootstrap

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"gcmt/internal/env"
)

// DiagnosticFormat is the single line written before the Application runs.
const DiagnosticFormat = "Current working dir: %s\n"

// Application is the unit that performs the program's actual work.
// Run is invoked exactly once and its result becomes the exit status.
type Application interface {
	Run() int
}

// Factory constructs an Application without arguments.
type Factory func() Application

// Bootstrap holds the collaborators of one process run.
type Bootstrap struct {
	probe  env.Probe
	stdout io.Writer
	newApp Factory
	logger zerolog.Logger
}

// Option configures a Bootstrap.
type Option func(*Bootstrap)

// WithLogger sets the logger used for step tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bootstrap) {
		b.logger = logger
	}
}

// New creates a Bootstrap. Logging is disabled unless WithLogger is given.
func New(probe env.Probe, stdout io.Writer, newApp Factory, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		probe:  probe,
		stdout: stdout,
		newApp: newApp,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the bootstrap sequence once:
//  1. resolves the working directory
//  2. writes the diagnostic line
//  3. constructs the Application
//  4. runs it
//  5. returns its status unmodified
//
// If the working directory cannot be resolved Run returns the *env.ProbeError
// and the Application is never constructed.
func (b *Bootstrap) Run() (int, error) {
	dir, err := b.probe.WorkingDir()
	if err != nil {
		return 0, err
	}
	b.logger.Debug().Str("dir", dir).Msg("Resolved working directory")

	if _, err := fmt.Fprintf(b.stdout, DiagnosticFormat, dir); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to write diagnostic line")
	}

	app := b.newApp()
	if app == nil {
		panic("bootstrap: application factory returned nil")
	}
	b.logger.Debug().Msg("Application constructed")

	status := app.Run()
	b.logger.Debug().Int("status", status).Msg("Application finished")

	return status, nil
}

// MustRun is like Run but panics when the working directory cannot be
// resolved, terminating the process abnormally.
func (b *Bootstrap) MustRun() int {
	status, err := b.Run()
	if err != nil {
		b.logger.Error().Err(err).Msg("Bootstrap aborted")
		panic(err)
	}
	return status
}
