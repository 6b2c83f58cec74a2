//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/imdisperser/iminstall/internal/log"
)

const (
	notificationsName  = "org.freedesktop.Notifications"
	notificationsPath  = "/org/freedesktop/Notifications"
	notificationsIface = "org.freedesktop.Notifications"
	urgencyCritical    = byte(2)
)

// desktopNotifier posts a critical desktop notification and blocks until it is
// closed. Alerts go to the fallback sink when no notification server answers.
type desktopNotifier struct {
	fallback Sink
}

// Native returns a freedesktop notification sink when a session bus is
// reachable, otherwise fallback.
func Native(fallback Sink) Sink {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug("No session bus, using terminal alerts", "err", err)
		return fallback
	}
	conn.Close()
	return &desktopNotifier{fallback: fallback}
}

func (d *desktopNotifier) Notify(title, message string) {
	if err := d.notify(title, message); err != nil {
		log.Debug("Desktop notification failed", "err", err)
		d.fallback.Notify(title, message)
	}
}

func (d *desktopNotifier) notify(title, message string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(notificationsPath),
		dbus.WithMatchInterface(notificationsIface),
	); err != nil {
		return fmt.Errorf("failed to subscribe to notification signals: %w", err)
	}

	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)

	obj := conn.Object(notificationsName, notificationsPath)
	hints := map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(urgencyCritical),
		"resident": dbus.MakeVariant(true),
	}

	var id uint32
	// expire timeout 0: stays until the user closes it
	err = obj.Call(notificationsIface+".Notify", 0,
		"iminstall", uint32(0), "dialog-error", title, message,
		[]string{"default", "OK"}, hints, int32(0)).Store(&id)
	if err != nil {
		return fmt.Errorf("failed to post notification: %w", err)
	}

	for sig := range signals {
		if len(sig.Body) == 0 {
			continue
		}
		sigID, _ := sig.Body[0].(uint32)
		if sigID != id {
			continue
		}
		switch sig.Name {
		case notificationsIface + ".ActionInvoked":
			obj.Call(notificationsIface+".CloseNotification", 0, id)
			return nil
		case notificationsIface + ".NotificationClosed":
			return nil
		}
	}
	return nil
}
