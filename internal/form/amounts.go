package form

// CustomAmountValue is the picker option that means "type your own amount".
const CustomAmountValue = "custom"

// AmountPicker keeps a preset-amount selector (radio list or select, the
// picker does not care which) and the free-form amount input in sync.
// Whichever side changed last wins.
type AmountPicker struct {
	doc     *Document
	presets []string

	selected       string
	focusRequested bool
}

// NewAmountPicker wires a picker to the document's amount field. presets
// are the selector's option values, which may include CustomAmountValue.
// The amount field is initialized to the current selection.
func NewAmountPicker(doc *Document, presets []string, selected string) *AmountPicker {
	p := &AmountPicker{
		doc:      doc,
		presets:  presets,
		selected: selected,
	}
	if amount := doc.Field("amount"); amount != nil && selected != CustomAmountValue {
		amount.Value = selected
	}
	return p
}

// Selected returns the selector's current value.
func (p *AmountPicker) Selected() string {
	return p.selected
}

// SelectPreset handles the donor picking a selector option. A preset copies
// its value into the amount field; the custom option instead asks for focus
// on the amount field so the donor can type.
func (p *AmountPicker) SelectPreset(value string) {
	p.selected = value

	if value == CustomAmountValue {
		p.focusRequested = true
		return
	}

	if amount := p.doc.Field("amount"); amount != nil {
		amount.Value = value
	}
}

// SetAmount handles the donor editing the amount field directly. If the
// value matches a preset the selector follows it; otherwise the selector
// moves to the custom option.
func (p *AmountPicker) SetAmount(value string) {
	if amount := p.doc.Field("amount"); amount != nil {
		amount.Value = value
	}

	if p.isPreset(value) {
		p.selected = value
		return
	}
	p.selected = CustomAmountValue
}

// ConsumeFocusRequest reports whether the amount field asked for focus
// since the last call, and resets the request.
func (p *AmountPicker) ConsumeFocusRequest() bool {
	requested := p.focusRequested
	p.focusRequested = false
	return requested
}

func (p *AmountPicker) isPreset(value string) bool {
	for _, preset := range p.presets {
		if preset == value {
			return true
		}
	}
	return false
}
