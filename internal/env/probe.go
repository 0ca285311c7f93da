package env

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnresolvable is matched by every error a Probe returns.
var ErrUnresolvable = errors.New("working directory unresolvable")

// Probe resolves the process's current working directory.
type Probe interface {
	WorkingDir() (string, error)
}

// ProbeError reports that the OS could not provide a working directory.
type ProbeError struct {
	Cause error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("failed to resolve working directory: %v", e.Cause)
}

func (e *ProbeError) Unwrap() []error {
	return []error{ErrUnresolvable, e.Cause}
}

// OSProbe reads the working directory from the operating system.
type OSProbe struct{}

// Ensure OSProbe implements Probe interface
var _ Probe = OSProbe{}

// WorkingDir returns the absolute working directory in display form.
func (OSProbe) WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", &ProbeError{Cause: err}
	}
	return Display(dir), nil
}

// Display renders a host path with forward-slash separators.
func Display(path string) string {
	return filepath.ToSlash(path)
}
