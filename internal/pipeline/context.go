package pipeline

import (
	"fmt"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/jsonutil"
	"sentence-analyzer/internal/models"
)

// RequestContext is the state of one pipeline run. Stages fill it in order
// and it is never shared between runs.
type RequestContext struct {
	RequestID string
	ClientID  string
	Sentence  string
	Identity  string

	// Set by load-config. Catalog is shared and must not be modified.
	Models  models.ModelSet
	Catalog []models.Endpoint

	// Set by extract-json.
	JSONOutput map[string]interface{}

	// Set by resolve-endpoint.
	MatchedEndpoint     *models.Endpoint
	EndpointID          string
	EndpointDescription string

	// Set by resolve-fields, one entry per declared parameter.
	Parameters []models.Parameter
}

func NewRequestContext(sentence, identity string) *RequestContext {
	return &RequestContext{
		Sentence: sentence,
		Identity: identity,
	}
}

// SetMatchedEndpoint records the chosen endpoint and its derived fields.
func (c *RequestContext) SetMatchedEndpoint(ep *models.Endpoint) {
	c.MatchedEndpoint = ep
	c.EndpointID = ep.ID
	c.EndpointDescription = ep.Description
}

// RequireCatalog fails when load-config has not produced any endpoints.
func (c *RequestContext) RequireCatalog(stage string) error {
	if len(c.Catalog) == 0 {
		return apperrors.NewConfigurationError(fmt.Sprintf("stage %s found no endpoint catalog", stage), nil)
	}
	return nil
}

// RequireJSON fails when extract-json has not run.
func (c *RequestContext) RequireJSON(stage string) error {
	if c.JSONOutput == nil {
		return missingPrerequisite(stage, "extracted JSON")
	}
	return nil
}

// RequireEndpoint fails when resolve-endpoint has not run.
func (c *RequestContext) RequireEndpoint(stage string) error {
	if c.MatchedEndpoint == nil {
		return missingPrerequisite(stage, "a matched endpoint")
	}
	return nil
}

func missingPrerequisite(stage, what string) error {
	return apperrors.NewInternalError(fmt.Errorf("stage %s requires %s", stage, what))
}

// LogFields returns the correlation fields of the request.
func (c *RequestContext) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"requestId": c.RequestID,
		"clientId":  c.ClientID,
		"email":     c.Identity,
	}
}

// Result assembles the response of a completed run.
func (c *RequestContext) Result() (*models.AnalysisResult, error) {
	if err := c.RequireEndpoint("result"); err != nil {
		return nil, err
	}

	jsonOutput := "{}"
	if c.JSONOutput != nil {
		out, err := jsonutil.Compact(c.JSONOutput)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Errorf("encode extracted JSON: %w", err))
		}
		jsonOutput = out
	}

	params := c.Parameters
	if params == nil {
		params = models.CloneParameters(c.MatchedEndpoint.Parameters)
	}

	return &models.AnalysisResult{
		EndpointID:          c.EndpointID,
		EndpointDescription: c.EndpointDescription,
		Parameters:          params,
		JSONOutput:          jsonOutput,
	}, nil
}
