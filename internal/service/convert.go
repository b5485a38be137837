package service

import (
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/rpc/sentencepb"
)

// ToResponse converts a pipeline result into the wire message. Unresolved
// parameters are sent without a value.
func ToResponse(result *models.AnalysisResult) *sentencepb.SentenceResponse {
	resp := &sentencepb.SentenceResponse{
		EndpointId:          result.EndpointID,
		EndpointDescription: result.EndpointDescription,
		Parameters:          make([]*sentencepb.Parameter, 0, len(result.Parameters)),
		JsonOutput:          result.JSONOutput,
	}
	for _, p := range result.Parameters {
		param := &sentencepb.Parameter{
			Name:        p.Name,
			Description: p.Description,
		}
		if p.Value != nil {
			param.SemanticValue = models.StringPtr(*p.Value)
		}
		resp.Parameters = append(resp.Parameters, param)
	}
	return resp
}
