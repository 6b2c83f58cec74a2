package wizard

import (
	"fmt"
	"maps"

	"github.com/imdisperser/iminstall/internal/payload"
)

type Page int

const (
	PageSelectFormat Page = iota
	PageSelectPath
	PageConfirm
	PageInstalling
	PageDone
)

func (p Page) String() string {
	switch p {
	case PageSelectFormat:
		return "SelectFormat"
	case PageSelectPath:
		return "SelectPath"
	case PageConfirm:
		return "Confirm"
	case PageInstalling:
		return "Installing"
	case PageDone:
		return "Done"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

type EventKind int

const (
	EventNext EventKind = iota
	EventPrev
	EventToggle
	EventSetPath
)

type Event struct {
	Kind   EventKind
	Format payload.Format
	Path   string
}

func NextEvent() Event { return Event{Kind: EventNext} }
func PrevEvent() Event { return Event{Kind: EventPrev} }

func ToggleEvent(f payload.Format) Event {
	return Event{Kind: EventToggle, Format: f}
}

func SetPathEvent(f payload.Format, path string) Event {
	return Event{Kind: EventSetPath, Format: f, Path: path}
}

// Action is the side effect a transition asks the dispatcher to perform.
type Action int

const (
	ActionNone Action = iota
	// ActionDeploy: run every selected deployment before committing the new state.
	ActionDeploy
	// ActionExit: terminate the process with exit code 0.
	ActionExit
)

type State struct {
	Page     Page
	Selected map[payload.Format]bool
	Paths    map[payload.Format]string
	Buttons  ButtonState
}

// NewState starts on SelectFormat with nothing selected and one destination
// root per known format.
func NewState(defaults map[payload.Format]string) State {
	s := State{
		Page:     PageSelectFormat,
		Selected: make(map[payload.Format]bool),
		Paths:    make(map[payload.Format]string),
	}
	for _, f := range payload.All() {
		s.Selected[f] = false
		s.Paths[f] = defaults[f]
	}
	s.Buttons = DeriveButtons(s.Page, s.AnySelected())
	return s
}

func (s State) AnySelected() bool {
	for _, selected := range s.Selected {
		if selected {
			return true
		}
	}
	return false
}

// SelectedFormats returns the selected formats in deployment order.
func (s State) SelectedFormats() []payload.Format {
	var formats []payload.Format
	for _, f := range payload.All() {
		if s.Selected[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

func (s State) clone() State {
	s.Selected = maps.Clone(s.Selected)
	s.Paths = maps.Clone(s.Paths)
	return s
}

// Apply is the pure transition function. It never mutates s. Going back from
// Installing or Done is a programming fault and panics.
func Apply(s State, ev Event) (State, Action) {
	next := s.clone()
	action := ActionNone

	switch ev.Kind {
	case EventNext:
		switch s.Page {
		case PageSelectFormat:
			next.Page = PageSelectPath
		case PageSelectPath:
			next.Page = PageConfirm
		case PageConfirm:
			next.Page = PageInstalling
			action = ActionDeploy
		case PageInstalling:
			next.Page = PageDone
		case PageDone:
			action = ActionExit
		}
	case EventPrev:
		switch s.Page {
		case PageSelectFormat:
		case PageSelectPath:
			next.Page = PageSelectFormat
		case PageConfirm:
			next.Page = PageSelectPath
		default:
			panic(fmt.Sprintf("wizard: no previous page from %s", s.Page))
		}
	case EventToggle:
		if s.Page == PageSelectFormat {
			next.Selected[ev.Format] = !next.Selected[ev.Format]
		}
	case EventSetPath:
		if s.Page == PageSelectPath {
			next.Paths[ev.Format] = ev.Path
		}
	}

	next.Buttons = DeriveButtons(next.Page, next.AnySelected())
	return next, action
}
