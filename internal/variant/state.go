package variant

// Interaction collects every input that can influence the interaction state.
// Requested is the caller's declared state; it only wins when no live input
// outranks it.
type Interaction struct {
	Requested State
	Focused   bool
	Pressed   bool
	Disabled  bool
	Loading   bool
}

// ResolveState collapses an Interaction into one State with fixed precedence:
// loading > disabled > pressed > focus > default.
//
// A requested disabled or loading state is treated like the matching flag so
// it still passes through the same precedence.
func ResolveState(in Interaction) State {
	switch {
	case in.Loading || in.Requested == StateLoading:
		return StateLoading
	case in.Disabled || in.Requested == StateDisabled:
		return StateDisabled
	case in.Pressed || in.Requested == StatePressed:
		return StatePressed
	case in.Focused || in.Requested == StateFocus:
		return StateFocus
	default:
		return StateDefault
	}
}

// Inert reports whether the state blocks activation.
func (s State) Inert() bool {
	return s == StateDisabled || s == StateLoading
}
