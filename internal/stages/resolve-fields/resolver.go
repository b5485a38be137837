package resolvefields

import (
	"sort"
	"strings"

	"sentence-analyzer/internal/common/jsonutil"
	"sentence-analyzer/internal/models"
)

// Resolution tiers, in precedence order.
const (
	TierExact       = "exact"
	TierAlternative = "alternative"
	TierSemantic    = "semantic"
)

// FieldsOf returns the "fields" object of the first detected action in an
// extraction document, or an empty map.
func FieldsOf(doc map[string]interface{}) map[string]interface{} {
	actions, _ := doc["endpoints"].([]interface{})
	if len(actions) == 0 {
		return map[string]interface{}{}
	}
	first, _ := actions[0].(map[string]interface{})
	fields, _ := first["fields"].(map[string]interface{})
	if fields == nil {
		return map[string]interface{}{}
	}
	return fields
}

// lookup returns the value of key unless it is absent or JSON null.
func lookup(fields map[string]interface{}, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	return jsonutil.Stringify(v), true
}

// Resolve fills copies of params from fields, trying the exact parameter
// name and then each alternative in declared order. It returns the tier
// that resolved each parameter and whether any parameter is still unresolved.
func Resolve(fields map[string]interface{}, params []models.Parameter) ([]models.Parameter, map[string]string, bool) {
	out := models.CloneParameters(params)
	tiers := make(map[string]string, len(out))
	unresolved := false

	for i := range out {
		p := &out[i]
		if v, ok := lookup(fields, p.Name); ok {
			p.Value = models.StringPtr(v)
			tiers[p.Name] = TierExact
			continue
		}
		for _, alt := range p.Alternatives {
			if v, ok := lookup(fields, alt); ok {
				p.Value = models.StringPtr(v)
				tiers[p.Name] = TierAlternative
				break
			}
		}
		if p.Value == nil {
			unresolved = true
		}
	}
	return out, tiers, unresolved
}

// ApplySemantic fills parameters that are still unresolved from the model's
// name-to-value mapping. A string the model quoted a second time loses that
// one enclosing pair of double quotes; quotes inside the text are kept.
func ApplySemantic(params []models.Parameter, mapping map[string]interface{}, tiers map[string]string) {
	for i := range params {
		p := &params[i]
		if p.Value != nil {
			continue
		}
		if v, ok := lookup(mapping, p.Name); ok {
			p.Value = models.StringPtr(unquoteOnce(v))
			tiers[p.Name] = TierSemantic
		}
	}
}

func unquoteOnce(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}

// FormatInputFields renders fields as "name: value" pairs sorted by name,
// values in compact JSON.
func FormatInputFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := jsonutil.Compact(fields[k])
		if err != nil {
			v = jsonutil.Stringify(fields[k])
		}
		pairs = append(pairs, k+": "+v)
	}
	return strings.Join(pairs, ", ")
}

// FormatParameters renders one "name: description (alternatives: ...)" line
// per parameter.
func FormatParameters(params []models.Parameter) string {
	lines := make([]string, 0, len(params))
	for _, p := range params {
		lines = append(lines, p.Name+": "+p.Description+" (alternatives: "+strings.Join(p.Alternatives, ", ")+")")
	}
	return strings.Join(lines, "\n")
}
