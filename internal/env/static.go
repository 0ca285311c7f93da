package env

// StaticProbe returns a fixed directory or a fixed failure.
type StaticProbe struct {
	Dir string
	Err error
}

var _ Probe = StaticProbe{}

// WorkingDir returns Dir in display form, or a *ProbeError wrapping Err.
func (s StaticProbe) WorkingDir() (string, error) {
	if s.Err != nil {
		return "", &ProbeError{Cause: s.Err}
	}
	return Display(s.Dir), nil
}
