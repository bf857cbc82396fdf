package synchronizer

// Outcome is the result of synchronizing one component.
type Outcome struct {
	Name   string
	Value  int64 // value reported before reconciliation
	Target int64
	// Diverged is set when Value differed from Target.
	Diverged bool
	// Reconciled is set when the component's Reconciler accepted the update.
	Reconciled bool
	Err        error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report collects the outcomes of one synchronization pass.
type Report struct {
	Target   int64
	Outcomes []Outcome
}

// OK reports whether every component step succeeded. An empty registry is
// trivially in sync.
func (r Report) OK() bool {
	for _, o := range r.Outcomes {
		if !o.OK() {
			return false
		}
	}
	return true
}

// Divergences returns the outcomes whose reported value differed from the
// target.
func (r Report) Divergences() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Diverged {
			out = append(out, o)
		}
	}
	return out
}

// Failures returns the outcomes whose step failed.
func (r Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Outcome looks up the outcome for name.
func (r Report) Outcome(name string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}
