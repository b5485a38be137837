package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentence-analyzer/internal/common/logger"
)

const overrideYAML = `prompts:
  find_endpoint:
    default_version: v1
    versions:
      v1:
        template: "Pick for {input_sentence} from {actions_list}"
      v2:
        template: "v2 {input_sentence}"
`

func TestDefault_HasAllTemplates(t *testing.T) {
	s := Default(logger.NewNoOpLogger())

	for _, name := range []string{SentenceToJSON, FindEndpoint, MatchFields} {
		tmpl, ok := s.Get(name, "")
		require.True(t, ok, name)
		assert.NotEmpty(t, tmpl)

		v, ok := s.DefaultVersion(name)
		require.True(t, ok)
		assert.Equal(t, "v1", v)
	}

	tmpl, _ := s.Get(SentenceToJSON, "v1")
	assert.Contains(t, tmpl, "{sentence}")
	tmpl, _ = s.Get(MatchFields, "v1")
	assert.Contains(t, tmpl, "{input_fields}")
	assert.Contains(t, tmpl, "{parameters}")
}

func TestGet_VersionFallback(t *testing.T) {
	s, err := Parse([]byte(overrideYAML), logger.NewTestLogger(t))
	require.NoError(t, err)

	v2, ok := s.Get(FindEndpoint, "v2")
	require.True(t, ok)
	assert.Equal(t, "v2 {input_sentence}", v2)

	def, _ := s.Get(FindEndpoint, "")
	missing, ok := s.Get(FindEndpoint, "non_existent")
	require.True(t, ok)
	assert.Equal(t, def, missing)

	_, ok = s.Get("unknown", "")
	assert.False(t, ok)

	assert.Equal(t, []string{"v1", "v2"}, s.ListVersions(FindEndpoint))
}

func TestParse_RejectsUndefinedDefault(t *testing.T) {
	_, err := Parse([]byte(`prompts:
  x:
    default_version: v9
    versions:
      v1:
        template: "a"
`), logger.NewNoOpLogger())
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	s, err := Parse([]byte(overrideYAML), logger.NewNoOpLogger())
	require.NoError(t, err)

	out, err := s.Render(FindEndpoint, "", map[string]string{
		"input_sentence": "book a room",
		"actions_list":   "- book room",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pick for book a room from - book room", out)

	_, err = s.Render("unknown", "", nil)
	assert.Error(t, err)
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrideYAML), 0o600))

	s, err := Load(path, logger.NewNoOpLogger())
	require.NoError(t, err)

	tmpl, _ := s.Get(FindEndpoint, "")
	assert.Equal(t, "Pick for {input_sentence} from {actions_list}", tmpl)

	_, ok := s.Get(SentenceToJSON, "")
	assert.True(t, ok, "defaults survive the overlay")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), logger.NewNoOpLogger())
	require.NoError(t, err)
	_, ok := s.Get(MatchFields, "")
	assert.True(t, ok)
}
