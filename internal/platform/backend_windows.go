//go:build windows

package platform

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
	procSetFocus             = user32.NewProc("SetFocus")
	procShowWindow           = user32.NewProc("ShowWindow")
)

const swMaximize = 3

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// enumWindowsProc appends each HWND to the *[]WindowID passed as lParam.
// Callbacks are a finite resource, so it is created once.
var enumWindowsProc = windows.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	ids := (*[]WindowID)(unsafe.Pointer(lparam))
	*ids = append(*ids, WindowID(hwnd))
	return 1
})

// WindowsBackend implements Backend on top of user32.
type WindowsBackend struct{}

var _ Backend = (*WindowsBackend)(nil)

// NewBackend returns the user32 backend. Options are ignored on Windows.
func NewBackend(_ Options) (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, errors.Wrap(err, "failed to load user32.dll")
	}
	return NewWindowsBackend(), nil
}

// NewWindowsBackend creates a new Windows API backend.
func NewWindowsBackend() *WindowsBackend {
	return &WindowsBackend{}
}

func (w *WindowsBackend) Windows() ([]WindowID, error) {
	var ids []WindowID
	ret, _, callErr := procEnumWindows.Call(enumWindowsProc, uintptr(unsafe.Pointer(&ids)))
	if ret == 0 {
		return nil, errors.Wrap(lastError(callErr), "EnumWindows failed")
	}
	return ids, nil
}

func (w *WindowsBackend) Title(id WindowID) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(id))
	if n == 0 {
		return "", nil
	}

	buf := make([]uint16, n+1)
	ret, _, callErr := procGetWindowTextW.Call(uintptr(id), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno != 0 {
			return "", errors.Wrapf(errno, "GetWindowTextW(%#x) failed", uintptr(id))
		}
		return "", nil
	}
	return windows.UTF16ToString(buf[:ret]), nil
}

func (w *WindowsBackend) Bounds(id WindowID) (Rect, error) {
	var r winRect
	ret, _, callErr := procGetWindowRect.Call(uintptr(id), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, errors.Wrapf(lastError(callErr), "GetWindowRect(%#x) failed", uintptr(id))
	}
	return Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}, nil
}

func (w *WindowsBackend) Visible(id WindowID) (bool, error) {
	ret, _, _ := procIsWindowVisible.Call(uintptr(id))
	return ret != 0, nil
}

func (w *WindowsBackend) Foreground() (WindowID, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	return WindowID(hwnd), nil
}

// SetForeground is subject to the foreground lock: Windows may only flash
// the taskbar button instead of switching. The return value is not checked.
func (w *WindowsBackend) SetForeground(id WindowID) error {
	procSetForegroundWindow.Call(uintptr(id))
	return nil
}

// SetFocus only succeeds for windows owned by the calling thread's message
// queue; for foreign windows the foreground switch already moves focus.
func (w *WindowsBackend) SetFocus(id WindowID) error {
	procSetFocus.Call(uintptr(id))
	return nil
}

func (w *WindowsBackend) Maximize(id WindowID) error {
	procShowWindow.Call(uintptr(id), swMaximize)
	return nil
}

// lastError returns the errno captured by LazyProc.Call, or an "unknown
// error" when the failing call left no error code behind.
func lastError(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return errors.New("unknown error")
	}
	return err
}
