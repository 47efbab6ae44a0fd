package variant

// Slots describes which content pieces a control shows.
type Slots struct {
	Leading  string
	Label    string
	Trailing string
	Spinner  bool
}

// ResolveSlots applies the loading rule: the spinner takes the leading
// position, the trailing glyph is dropped and the label stays.
func ResolveSlots(state State, leading, label, trailing string) Slots {
	if state == StateLoading {
		return Slots{Label: label, Spinner: true}
	}
	return Slots{Leading: leading, Label: label, Trailing: trailing}
}
