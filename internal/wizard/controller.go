package wizard

import (
	"maps"

	"github.com/imdisperser/iminstall/internal/deployer"
	"github.com/imdisperser/iminstall/internal/log"
	"github.com/imdisperser/iminstall/internal/notify"
	"github.com/imdisperser/iminstall/internal/payload"
)

// ExitCode is the process exit status once the wizard finishes.
const ExitCode = 0

type Installer interface {
	DeployFormat(f payload.Format, root string) deployer.DeploymentResult
}

// Controller owns the wizard state and performs the side effects Apply asks
// for. It is driven from a single goroutine.
type Controller struct {
	state     State
	installer Installer
	sink      notify.Sink
	results   []deployer.DeploymentResult
}

// View is the read-only snapshot handed to the rendering layer.
type View struct {
	Page     Page
	Buttons  ButtonState
	Selected map[payload.Format]bool
	Paths    map[payload.Format]string
	Results  []deployer.DeploymentResult
}

func NewController(state State, installer Installer, sink notify.Sink) *Controller {
	return &Controller{
		state:     state,
		installer: installer,
		sink:      sink,
	}
}

func (c *Controller) View() View {
	return View{
		Page:     c.state.Page,
		Buttons:  c.state.Buttons,
		Selected: maps.Clone(c.state.Selected),
		Paths:    maps.Clone(c.state.Paths),
		Results:  append([]deployer.DeploymentResult(nil), c.results...),
	}
}

func (c *Controller) Toggle(f payload.Format)           { c.Dispatch(ToggleEvent(f)) }
func (c *Controller) SetPath(f payload.Format, p string) { c.Dispatch(SetPathEvent(f, p)) }
func (c *Controller) Prev()                              { c.Dispatch(PrevEvent()) }

// Next presses the forward button. It reports true when the wizard is done
// and the process should exit with ExitCode.
func (c *Controller) Next() bool {
	return c.Dispatch(NextEvent())
}

// Dispatch applies ev and runs its side effect. A Next press is dropped while
// the forward button is hidden or disabled.
func (c *Controller) Dispatch(ev Event) (exit bool) {
	if ev.Kind == EventNext && (!c.state.Buttons.ShowNext || !c.state.Buttons.NextEnabled) {
		log.Debug("Ignoring Next while disabled", "page", c.state.Page)
		return false
	}

	next, action := Apply(c.state, ev)

	switch action {
	case ActionDeploy:
		if !c.install() {
			return false
		}
		c.commit(next)
		done, _ := Apply(c.state, NextEvent())
		c.commit(done)
	case ActionExit:
		log.Info("Installation finished")
		return true
	default:
		c.commit(next)
	}
	return false
}

func (c *Controller) commit(s State) {
	if s.Page != c.state.Page {
		log.Debug("Page changed", "from", c.state.Page, "to", s.Page)
	}
	c.state = s
}

// install deploys every selected format in order and stops at the first
// failure, which is reported once through the sink. Files written for earlier
// formats in the batch are left in place.
func (c *Controller) install() bool {
	c.results = nil

	for _, f := range c.state.SelectedFormats() {
		log.Info("Installing "+f.String(), "root", c.state.Paths[f])

		result := c.installer.DeployFormat(f, c.state.Paths[f])
		c.results = append(c.results, result)
		if result.Error != nil {
			notify.Error(c.sink, result.Error)
			return false
		}

		log.Info("Installed "+f.String(), "path", result.Path)
	}
	return true
}
