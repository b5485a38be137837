package models

// Endpoint is one catalog-defined API action. Endpoints are immutable once
// loaded; resolution works on copies of their parameters.
type Endpoint struct {
	ID          string      `json:"id" yaml:"id"`
	Text        string      `json:"text" yaml:"text"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
}

// Parameter is a named input an endpoint expects. Value is nil until field
// resolution fills it.
type Parameter struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Required     bool     `json:"required" yaml:"required"`
	Alternatives []string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Value        *string  `json:"value,omitempty" yaml:"-"`
}

// IsResolved reports whether the parameter carries a value.
func (p Parameter) IsResolved() bool {
	return p.Value != nil
}

// ValueOrEmpty returns the resolved value or "".
func (p Parameter) ValueOrEmpty() string {
	if p.Value == nil {
		return ""
	}
	return *p.Value
}

// CloneParameters copies params without their values so the catalog entry
// stays untouched.
func CloneParameters(params []Parameter) []Parameter {
	out := make([]Parameter, len(params))
	for i, p := range params {
		out[i] = Parameter{
			Name:         p.Name,
			Description:  p.Description,
			Required:     p.Required,
			Alternatives: append([]string(nil), p.Alternatives...),
		}
	}
	return out
}

// StringPtr is a helper for building resolved values.
func StringPtr(s string) *string {
	return &s
}
