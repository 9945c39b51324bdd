// Package form models the donation form and drives its submission flow:
// tokenize the card, inject the token, post the serialized fields, and
// render the outcome. It is the in-process equivalent of the script that
// runs against the rendered form markup.
package form

import (
	"net/url"
	"strings"
)

// Field input types that affect serialization.
const (
	TypeText     = "text"
	TypeHidden   = "hidden"
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
)

// Field is one input element of the form.
type Field struct {
	Name     string
	Type     string
	Value    string
	Checked  bool
	Disabled bool
}

// Document is the form as the submission flow sees it: ordered fields, a
// general error area, per-field error slots, the submit control, and the
// page scroll position.
type Document struct {
	// Action is the URL the serialized form is posted to.
	Action string

	// Top is the form's offset from the top of the page, used when
	// scrolling to the success message.
	Top int

	fields        []*Field
	generalErrors []string
	fieldErrors   map[string][]string
	submitEnabled bool
	replacedWith  string
	scrollY       int
}

// NewDocument builds a document around an ordered field list. The submit
// control starts enabled.
func NewDocument(action string, fields []*Field) *Document {
	return &Document{
		Action:        action,
		fields:        fields,
		fieldErrors:   make(map[string][]string),
		submitEnabled: true,
	}
}

// Field returns the first field with the given name, or nil.
func (d *Document) Field(name string) *Field {
	for _, f := range d.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Fields returns the document's fields in order.
func (d *Document) Fields() []*Field {
	return d.fields
}

// SetHiddenField sets the value of a hidden field, creating it at the end of
// the form if it does not exist yet. Repeated calls overwrite the same
// field; the form never grows a duplicate.
func (d *Document) SetHiddenField(name, value string) {
	if f := d.Field(name); f != nil {
		f.Value = value
		return
	}
	d.fields = append(d.fields, &Field{Name: name, Type: TypeHidden, Value: value})
}

// EncodeParams serializes the form the way a browser would: unchecked
// checkboxes and radios are skipped, as are nameless and disabled fields.
// Field order is preserved.
func (d *Document) EncodeParams() string {
	var pairs []string
	for _, f := range d.fields {
		if f.Name == "" || f.Disabled {
			continue
		}
		if (f.Type == TypeCheckbox || f.Type == TypeRadio) && !f.Checked {
			continue
		}
		pairs = append(pairs, url.QueryEscape(f.Name)+"="+url.QueryEscape(f.Value))
	}
	return strings.Join(pairs, "&")
}

// ClearErrors empties the general error area and removes every field error.
func (d *Document) ClearErrors() {
	d.generalErrors = nil
	d.fieldErrors = make(map[string][]string)
}

// AddFieldError attaches a message next to the named field. Errors for
// fields the form does not render fall through to the general area so they
// are never silently dropped.
func (d *Document) AddFieldError(name, message string) {
	if d.Field(name) == nil {
		d.AddGeneralError(message)
		return
	}
	d.fieldErrors[name] = append(d.fieldErrors[name], message)
}

// AddGeneralError appends a message to the general error area. Messages
// accumulate; earlier ones stay visible.
func (d *Document) AddGeneralError(message string) {
	d.generalErrors = append(d.generalErrors, message)
}

// GeneralErrors returns the general error area's messages in order.
func (d *Document) GeneralErrors() []string {
	return d.generalErrors
}

// FieldErrors returns the messages attached to the named field.
func (d *Document) FieldErrors(name string) []string {
	return d.fieldErrors[name]
}

// DisableSubmit disables the submit control.
func (d *Document) DisableSubmit() {
	d.submitEnabled = false
}

// EnableSubmit re-enables the submit control.
func (d *Document) EnableSubmit() {
	d.submitEnabled = true
}

// SubmitEnabled reports whether the submit control accepts clicks.
func (d *Document) SubmitEnabled() bool {
	return d.submitEnabled
}

// ReplaceWithSuccess swaps the form out for the success message and scrolls
// the page to just above it, clamped at the top.
func (d *Document) ReplaceWithSuccess(message string) {
	d.replacedWith = message
	d.scrollY = d.Top - 20
	if d.scrollY < 0 {
		d.scrollY = 0
	}
}

// SuccessMessage returns the message the form was replaced with, or "" if
// the form is still shown.
func (d *Document) SuccessMessage() string {
	return d.replacedWith
}

// Replaced reports whether the form has been replaced by a success message.
func (d *Document) Replaced() bool {
	return d.replacedWith != ""
}

// ScrollY returns the page scroll position requested by the flow.
func (d *Document) ScrollY() int {
	return d.scrollY
}
