package submission

// FailurePrefix opens every failure shown to the user
const FailurePrefix = "message could not be generated"

// ResultArea is where settlements are shown, hidden until something is presented
type ResultArea interface {
	Hide()
	Show()
	SetText(text string)
}

// Trigger is the control starting a submission
type Trigger interface {
	Label() string
	SetLabel(label string)
	Enabled() bool
	SetEnabled(enabled bool)
}

// FailureText composes the text shown for a failed submission
func FailureText(detail string) string {
	return FailurePrefix + ".\nError: " + detail
}

// Present renders the settlement into the result area and makes it visible
func Present(area ResultArea, s Settlement) {
	switch v := s.(type) {
	case Success:
		area.SetText(v.Message)
	case Failure:
		area.SetText(FailureText(v.Detail))
	default:
		return
	}
	area.Show()
}
