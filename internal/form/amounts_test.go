package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func amountDocument() *Document {
	return NewDocument("/donate", []*Field{
		{Name: "amount", Type: TypeText},
	})
}

func newPicker(doc *Document) *AmountPicker {
	return NewAmountPicker(doc, []string{"25", "150", "500", "1000", CustomAmountValue}, "150")
}

func TestAmountPicker_InitializesAmountFromSelection(t *testing.T) {
	doc := amountDocument()
	picker := newPicker(doc)

	assert.Equal(t, "150", doc.Field("amount").Value)
	assert.Equal(t, "150", picker.Selected())
}

func TestAmountPicker_SelectPresetCopiesValue(t *testing.T) {
	doc := amountDocument()
	picker := newPicker(doc)

	picker.SelectPreset("500")

	assert.Equal(t, "500", doc.Field("amount").Value)
	assert.Equal(t, "500", picker.Selected())
	assert.False(t, picker.ConsumeFocusRequest())
}

func TestAmountPicker_SelectCustomFocusesAmount(t *testing.T) {
	doc := amountDocument()
	picker := newPicker(doc)

	picker.SelectPreset(CustomAmountValue)

	// The amount keeps its previous value; the donor types over it
	assert.Equal(t, "150", doc.Field("amount").Value)
	assert.Equal(t, CustomAmountValue, picker.Selected())
	assert.True(t, picker.ConsumeFocusRequest())
	assert.False(t, picker.ConsumeFocusRequest())
}

func TestAmountPicker_SetAmountSyncsSelector(t *testing.T) {
	doc := amountDocument()
	picker := newPicker(doc)

	// Typing a value that matches a preset moves the selector to it
	picker.SetAmount("500")
	assert.Equal(t, "500", picker.Selected())

	// Typing anything else moves the selector to custom
	picker.SetAmount("77")
	assert.Equal(t, "77", doc.Field("amount").Value)
	assert.Equal(t, CustomAmountValue, picker.Selected())

	// And back again
	picker.SetAmount("150")
	assert.Equal(t, "150", picker.Selected())
}

func TestAmountPicker_LastWriteWins(t *testing.T) {
	doc := amountDocument()
	picker := newPicker(doc)

	picker.SetAmount("77")
	picker.SelectPreset("25")
	assert.Equal(t, "25", doc.Field("amount").Value)

	picker.SetAmount("42")
	assert.Equal(t, CustomAmountValue, picker.Selected())
	assert.Equal(t, "42", doc.Field("amount").Value)
}
