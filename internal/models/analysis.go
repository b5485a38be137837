package models

// AnalysisResult is the outcome of one successful pipeline run.
type AnalysisResult struct {
	EndpointID          string      `json:"endpointId"`
	EndpointDescription string      `json:"endpointDescription"`
	Parameters          []Parameter `json:"parameters"`
	JSONOutput          string      `json:"jsonOutput"`
}
