//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

type appleScriptDialog struct {
	fallback Sink
}

// Native returns a sink that shows a stop-icon dialog through osascript.
func Native(fallback Sink) Sink {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fallback
	}
	return &appleScriptDialog{fallback: fallback}
}

func (a *appleScriptDialog) Notify(title, message string) {
	script := fmt.Sprintf(`display dialog %s with title %s buttons {"OK"} default button "OK" with icon stop`,
		appleScriptString(message), appleScriptString(title))
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		a.fallback.Notify(title, message)
	}
}

func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
