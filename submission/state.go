package submission

// Phase of the submission lifecycle
type Phase int

const (
	// Idle - nothing submitted yet
	Idle Phase = iota
	// Submitting - a request is in flight, the trigger is disabled
	Submitting
	// Settled - the last request finished, see State.Settlement
	Settled
)

// String implements fmt.Stringer
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Settlement is the outcome of a submission, either Success or Failure
type Settlement interface {
	settlement()
}

// Success carries the generated message text exactly as returned
type Success struct {
	Message string
}

// Failure carries a human readable description of what went wrong
type Failure struct {
	Detail string
}

func (Success) settlement() {}
func (Failure) settlement() {}

// State is a snapshot of a Controller's lifecycle
type State struct {
	Phase Phase
	// Settlement is only set while Phase is Settled
	Settlement Settlement
}
