// Package notify surfaces unrecoverable errors to the user through a blocking,
// modal alert.
package notify

import (
	"errors"
	"fmt"

	"github.com/imdisperser/iminstall/internal/errdefs"
	"github.com/imdisperser/iminstall/internal/log"
)

// Sink shows a modal alert and returns once the user has dismissed it.
type Sink interface {
	Notify(title, message string)
}

// Func adapts a plain function to a Sink.
type Func func(title, message string)

func (f Func) Notify(title, message string) { f(title, message) }

// Error reports err on sink with the title "Error". The message leads with the
// human-readable context and appends the underlying cause on its own line.
func Error(sink Sink, err error) {
	if err == nil {
		return
	}
	message := Describe(err)
	log.Error("Notifying user", "err", err)
	sink.Notify("Error", message)
}

func Describe(err error) string {
	var ce *errdefs.CustomError
	if !errors.As(err, &ce) {
		return fmt.Sprintf("here is an error but idk what happened\n%v", err)
	}

	headline := ce.Message
	if ce.Path != "" {
		headline = fmt.Sprintf("%s\n%s", headline, ce.Path)
	}
	if ce.Cause == nil {
		return headline
	}
	return fmt.Sprintf("%s\n%v", headline, ce.Cause)
}

// Alert is one delivered notification.
type Alert struct {
	Title   string
	Message string
}

// Recorder is a Sink that keeps every alert; the headless installer uses it to
// print a summary, tests use it to assert on what the user saw.
type Recorder struct {
	Alerts []Alert
}

func (r *Recorder) Notify(title, message string) {
	r.Alerts = append(r.Alerts, Alert{Title: title, Message: message})
}

// Chain delivers every alert to each sink in turn.
func Chain(sinks ...Sink) Sink {
	return Func(func(title, message string) {
		for _, s := range sinks {
			s.Notify(title, message)
		}
	})
}
