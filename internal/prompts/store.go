// Package prompts stores versioned prompt templates.
package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"sentence-analyzer/internal/common/logger"
)

// Template names.
const (
	SentenceToJSON = "sentence_to_json"
	FindEndpoint   = "find_endpoint"
	MatchFields    = "match_fields"
)

//go:embed defaults.yaml
var defaultPrompts []byte

type promptVersion struct {
	Template string `yaml:"template"`
}

type promptVersions struct {
	Versions       map[string]promptVersion `yaml:"versions"`
	DefaultVersion string                   `yaml:"default_version"`
}

type document struct {
	Prompts map[string]promptVersions `yaml:"prompts"`
}

// Store resolves templates by name and version. It is read-only after
// construction.
type Store struct {
	prompts map[string]promptVersions
	logger  logger.Logger
}

// Default returns the store built from the templates compiled into the binary.
func Default(log logger.Logger) *Store {
	s, err := Parse(defaultPrompts, log)
	if err != nil {
		panic(fmt.Sprintf("embedded prompts are invalid: %v", err))
	}
	return s
}

// Load reads templates from path, layered over the built-in defaults. An
// empty path or a missing file yields the defaults.
func Load(path string, log logger.Logger) (*Store, error) {
	store := Default(log)
	if path == "" {
		return store, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("Prompt file not found, using built-in templates", map[string]interface{}{"path": path})
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prompts %s: %w", path, err)
	}

	override, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("parse prompts %s: %w", path, err)
	}
	for name, versions := range override.prompts {
		store.prompts[name] = versions
	}
	return store, nil
}

// Parse decodes a prompts YAML document.
func Parse(data []byte, log logger.Logger) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	for name, p := range doc.Prompts {
		if _, ok := p.Versions[p.DefaultVersion]; !ok {
			return nil, fmt.Errorf("prompt %q: default version %q not defined", name, p.DefaultVersion)
		}
	}
	if doc.Prompts == nil {
		doc.Prompts = make(map[string]promptVersions)
	}
	return &Store{prompts: doc.Prompts, logger: log}, nil
}

// Get returns the template for name at version. An empty version selects the
// default; an unknown version falls back to the default with a warning.
func (s *Store) Get(name, version string) (string, bool) {
	p, ok := s.prompts[name]
	if !ok {
		return "", false
	}
	if version == "" {
		version = p.DefaultVersion
	}
	if v, ok := p.Versions[version]; ok {
		return v.Template, true
	}

	s.logger.Warn("Prompt version not found, falling back to default", map[string]interface{}{
		"prompt":         name,
		"version":        version,
		"defaultVersion": p.DefaultVersion,
	})
	v, ok := p.Versions[p.DefaultVersion]
	return v.Template, ok
}

// Render fills {placeholder} markers in the named template.
func (s *Store) Render(name, version string, vars map[string]string) (string, error) {
	tmpl, ok := s.Get(name, version)
	if !ok {
		return "", fmt.Errorf("prompt template %q not found", name)
	}
	return Fill(tmpl, vars), nil
}

// Fill replaces each {key} in tmpl with vars[key].
func Fill(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// ListVersions returns the sorted versions defined for name.
func (s *Store) ListVersions(name string) []string {
	p, ok := s.prompts[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(p.Versions))
	for v := range p.Versions {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s *Store) DefaultVersion(name string) (string, bool) {
	p, ok := s.prompts[name]
	return p.DefaultVersion, ok
}
