package models

// ModelParams selects a model per provider plus its sampling settings.
type ModelParams struct {
	Name        string  `json:"name"`
	Ollama      string  `json:"ollama"`
	Claude      string  `json:"claude"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// ModelFor returns the model name to send to the named provider, falling
// back to Name.
func (p ModelParams) ModelFor(provider string) string {
	switch provider {
	case "ollama":
		if p.Ollama != "" {
			return p.Ollama
		}
	case "claude":
		if p.Claude != "" {
			return p.Claude
		}
	}
	return p.Name
}

// ModelSet holds the model parameters for each prompt purpose.
type ModelSet struct {
	SentenceToJSON ModelParams `json:"sentence_to_json"`
	FindEndpoint   ModelParams `json:"find_endpoint"`
	MatchFields    ModelParams `json:"match_fields"`
}
