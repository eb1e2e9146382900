//go:build !linux && !windows

package platform

// NewBackend reports ErrUnsupported: only the user32 and X11 window systems
// are implemented.
func NewBackend(_ Options) (Backend, error) {
	return nil, ErrUnsupported
}
