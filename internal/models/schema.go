package models

// FieldSpec describes one personal or address field of the donation form.
type FieldSpec struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// FormSchema is the resolved set of fields active for the current
// configuration. It is built once at startup so neither the validator nor
// the form renderer has to probe configuration ad hoc.
type FormSchema struct {
	Fields []FieldSpec `json:"fields"`
}

// NewFormSchema resolves displayed/required field lists into a schema. The
// amount field is always present and always required.
func NewFormSchema(displayed, required, address []string) *FormSchema {
	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		requiredSet[name] = true
	}

	fields := []FieldSpec{{Name: "amount", Required: true}}
	for _, name := range displayed {
		fields = append(fields, FieldSpec{Name: name, Required: requiredSet[name]})
	}
	for _, name := range address {
		fields = append(fields, FieldSpec{Name: name, Required: requiredSet[name]})
	}

	return &FormSchema{Fields: fields}
}

// Has reports whether a field is active in this schema.
func (s *FormSchema) Has(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// IsRequired reports whether an active field must be non-empty.
func (s *FormSchema) IsRequired(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Required
		}
	}
	return false
}
