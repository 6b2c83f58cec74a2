//go:build windows

package notify

import (
	"golang.org/x/sys/windows"
)

const (
	mbOK        = 0x00000000
	mbIconError = 0x00000010
	mbTopmost   = 0x00040000
)

type messageBox struct {
	fallback Sink
}

// Native returns a Win32 MessageBox sink.
func Native(fallback Sink) Sink {
	return &messageBox{fallback: fallback}
}

func (m *messageBox) Notify(title, message string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		m.fallback.Notify(title, message)
		return
	}
	msg, err := windows.UTF16PtrFromString(message)
	if err != nil {
		m.fallback.Notify(title, message)
		return
	}
	if _, err := windows.MessageBox(0, msg, t, mbOK|mbIconError|mbTopmost); err != nil {
		m.fallback.Notify(title, message)
	}
}
