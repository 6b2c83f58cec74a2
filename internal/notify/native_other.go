//go:build !windows && !linux && !darwin

package notify

// Native has no desktop dialog on this platform.
func Native(fallback Sink) Sink {
	return fallback
}
