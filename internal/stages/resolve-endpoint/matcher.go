package resolveendpoint

import (
	"strings"

	"sentence-analyzer/internal/models"
)

// answerCutset is stripped from both ends of the model's answer line.
const answerCutset = "\"' \t\r"

// CleanAnswer returns the last non-empty line of raw without surrounding
// whitespace and quotes. The result may be empty.
func CleanAnswer(raw string) string {
	lines := strings.Split(raw, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		return strings.Trim(lines[i], answerCutset)
	}
	return ""
}

// ActionsList renders the trigger phrases of catalog as "- <text>" lines.
func ActionsList(catalog []models.Endpoint) string {
	var b strings.Builder
	for i, ep := range catalog {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(ep.Text)
	}
	return b.String()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match returns the first endpoint, in catalog order, whose normalized
// trigger phrase occurs in the normalized answer either whole or token by
// token. There is no scoring. Endpoints with a blank trigger never match.
func Match(catalog []models.Endpoint, answer string) (*models.Endpoint, bool) {
	normalized := normalize(answer)
	if normalized == "" {
		return nil, false
	}

	for i := range catalog {
		trigger := normalize(catalog[i].Text)
		if trigger == "" {
			continue
		}
		if strings.Contains(normalized, trigger) || containsAllTokens(normalized, trigger) {
			return &catalog[i], true
		}
	}
	return nil, false
}

func containsAllTokens(answer, trigger string) bool {
	for _, token := range strings.Fields(trigger) {
		if !strings.Contains(answer, token) {
			return false
		}
	}
	return true
}
