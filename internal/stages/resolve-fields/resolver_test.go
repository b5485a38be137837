package resolvefields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentence-analyzer/internal/models"
)

func meetingParameters() []models.Parameter {
	return []models.Parameter{
		{Name: "time", Description: "Start time", Required: true, Alternatives: []string{"when", "datetime"}},
		{Name: "participants", Description: "Attendees", Required: true, Alternatives: []string{"with", "attendees"}},
		{Name: "location", Description: "Where", Required: false},
	}
}

func TestFieldsOf(t *testing.T) {
	doc := map[string]interface{}{"endpoints": []interface{}{
		map[string]interface{}{"action": "a", "fields": map[string]interface{}{"x": "1"}},
		map[string]interface{}{"action": "b", "fields": map[string]interface{}{"y": "2"}},
	}}
	assert.Equal(t, map[string]interface{}{"x": "1"}, FieldsOf(doc))

	assert.Empty(t, FieldsOf(map[string]interface{}{}))
	assert.Empty(t, FieldsOf(map[string]interface{}{"endpoints": []interface{}{"oops"}}))
}

func TestResolve_Precedence(t *testing.T) {
	fields := map[string]interface{}{
		"time":      "2pm",
		"when":      "3pm",
		"attendees": "Ann",
		"with":      "John",
	}

	params, tiers, unresolved := Resolve(fields, meetingParameters())
	require.Len(t, params, 3)

	assert.Equal(t, "2pm", params[0].ValueOrEmpty(), "exact name wins over alternative")
	assert.Equal(t, TierExact, tiers["time"])

	assert.Equal(t, "John", params[1].ValueOrEmpty(), "alternatives are tried in declared order")
	assert.Equal(t, TierAlternative, tiers["participants"])

	assert.Nil(t, params[2].Value)
	assert.True(t, unresolved)
}

func TestResolve_DoesNotMutateCatalog(t *testing.T) {
	catalog := meetingParameters()
	_, _, _ = Resolve(map[string]interface{}{"time": "2pm"}, catalog)
	assert.Nil(t, catalog[0].Value)
}

func TestResolve_AllResolved(t *testing.T) {
	fields := map[string]interface{}{"time": "2pm", "participants": "John", "location": "office"}
	_, _, unresolved := Resolve(fields, meetingParameters())
	assert.False(t, unresolved)
}

func TestResolve_ValueStringification(t *testing.T) {
	params := []models.Parameter{{Name: "count"}, {Name: "names"}, {Name: "flag"}, {Name: "nested"}, {Name: "missing"}}
	fields := map[string]interface{}{
		"count":   json.Number("3"),
		"names":   []interface{}{"John", "Ann"},
		"flag":    true,
		"nested":  map[string]interface{}{"a": "b"},
		"missing": nil,
	}

	out, _, unresolved := Resolve(fields, params)
	assert.Equal(t, "3", out[0].ValueOrEmpty())
	assert.Equal(t, `["John","Ann"]`, out[1].ValueOrEmpty())
	assert.Equal(t, "true", out[2].ValueOrEmpty())
	assert.Equal(t, `{"a":"b"}`, out[3].ValueOrEmpty())
	assert.Nil(t, out[4].Value, "JSON null counts as absent")
	assert.True(t, unresolved)
}

func TestApplySemantic(t *testing.T) {
	params, tiers, _ := Resolve(map[string]interface{}{"time": "2pm"}, meetingParameters())

	ApplySemantic(params, map[string]interface{}{
		"time":         "ignored",
		"participants": `"John"`,
		"unknown":      "x",
	}, tiers)

	assert.Equal(t, "2pm", params[0].ValueOrEmpty(), "resolved parameters are never overwritten")
	assert.Equal(t, "John", params[1].ValueOrEmpty())
	assert.Equal(t, TierSemantic, tiers["participants"])
	assert.Nil(t, params[2].Value)
}

func TestApplySemantic_Quotes(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"double-encoded string", `"John"`, "John"},
		{"quotes inside text", `say "hi"`, `say "hi"`},
		{"leading quote only", `"quoted" word`, `"quoted" word`},
		{"single quote character", `"`, `"`},
		{"plain", "John", "John"},
		{"number", json.Number("3"), "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := []models.Parameter{{Name: "participants"}}
			ApplySemantic(params, map[string]interface{}{"participants": tt.value}, map[string]string{})
			require.NotNil(t, params[0].Value)
			assert.Equal(t, tt.expected, *params[0].Value)
		})
	}
}

func TestFormatInputFields(t *testing.T) {
	fields := map[string]interface{}{"when": "tomorrow", "count": json.Number("2"), "with": []interface{}{"John"}}
	assert.Equal(t, `count: 2, when: "tomorrow", with: ["John"]`, FormatInputFields(fields))
	assert.Equal(t, "", FormatInputFields(nil))
}

func TestFormatParameters(t *testing.T) {
	assert.Equal(t,
		"time: Start time (alternatives: when, datetime)\nparticipants: Attendees (alternatives: with, attendees)\nlocation: Where (alternatives: )",
		FormatParameters(meetingParameters()),
	)
}
