package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleFields() []*Field {
	return []*Field{
		{Name: "amount", Type: TypeText, Value: "150"},
		{Name: "monthly", Type: TypeCheckbox, Value: "on"},
		{Name: "name", Type: TypeText, Value: "Jane Donor"},
		{Name: "", Type: TypeText, Value: "ignored"},
		{Name: "coupon", Type: TypeText, Value: "x", Disabled: true},
		{Name: "preset-amount", Type: TypeRadio, Value: "150", Checked: true},
		{Name: "preset-amount", Type: TypeRadio, Value: "500"},
	}
}

func TestDocument_EncodeParams(t *testing.T) {
	doc := NewDocument("/donate", sampleFields())

	// Unchecked checkbox, nameless field, disabled field, and the
	// unchecked radio are all excluded; order is preserved
	assert.Equal(t,
		"amount=150&name=Jane+Donor&preset-amount=150",
		doc.EncodeParams())

	doc.Field("monthly").Checked = true
	assert.Equal(t,
		"amount=150&monthly=on&name=Jane+Donor&preset-amount=150",
		doc.EncodeParams())
}

func TestDocument_SetHiddenField_Idempotent(t *testing.T) {
	doc := NewDocument("/donate", []*Field{
		{Name: "amount", Type: TypeText, Value: "25"},
	})

	doc.SetHiddenField("stripe_token", "tok_1")
	doc.SetHiddenField("stripe_token", "tok_2")
	doc.SetHiddenField("stripe_token", "tok_3")

	count := 0
	for _, f := range doc.Fields() {
		if f.Name == "stripe_token" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "tok_3", doc.Field("stripe_token").Value)
	assert.Equal(t, TypeHidden, doc.Field("stripe_token").Type)
}

func TestDocument_Errors(t *testing.T) {
	doc := NewDocument("/donate", []*Field{
		{Name: "email", Type: TypeText},
	})

	doc.AddFieldError("email", "Invalid email provided.")
	doc.AddGeneralError("first")
	doc.AddGeneralError("second")
	// No such field rendered; the message must not vanish
	doc.AddFieldError("phone", "Invalid phone number provided.")

	assert.Equal(t, []string{"Invalid email provided."}, doc.FieldErrors("email"))
	assert.Equal(t, []string{"first", "second", "Invalid phone number provided."}, doc.GeneralErrors())

	doc.ClearErrors()
	assert.Empty(t, doc.FieldErrors("email"))
	assert.Empty(t, doc.GeneralErrors())
}

func TestDocument_ReplaceWithSuccess_ScrollClampedAtTop(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		scrollY int
	}{
		{name: "form below the fold", top: 400, scrollY: 380},
		{name: "form near the top", top: 10, scrollY: 0},
		{name: "form at the top", top: 0, scrollY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("/donate", nil)
			doc.Top = tt.top

			doc.ReplaceWithSuccess("<p>Thank you!</p>")

			assert.True(t, doc.Replaced())
			assert.Equal(t, "<p>Thank you!</p>", doc.SuccessMessage())
			assert.Equal(t, tt.scrollY, doc.ScrollY())
		})
	}
}
