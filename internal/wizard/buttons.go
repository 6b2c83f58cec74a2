package wizard

const (
	LabelNext    = "Next"
	LabelInstall = "Install"
	LabelFinish  = "Finish"
	LabelBack    = "Back"
)

type ButtonState struct {
	ShowPrev    bool
	ShowNext    bool
	NextEnabled bool
	NextLabel   string
}

// DeriveButtons is the only place button state is computed.
func DeriveButtons(page Page, anySelected bool) ButtonState {
	b := ButtonState{
		ShowNext:    page != PageInstalling,
		ShowPrev:    page != PageSelectFormat && page != PageInstalling && page != PageDone,
		NextEnabled: anySelected,
		NextLabel:   LabelNext,
	}

	switch page {
	case PageConfirm:
		b.NextLabel = LabelInstall
	case PageDone:
		b.NextLabel = LabelFinish
	}
	return b
}
