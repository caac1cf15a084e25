package dto

// WorkflowRunResponse identifies a started workflow run
type WorkflowRunResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}
