package workflows

type ProvisionWorkflowInput struct {
	Reason string `json:"reason"` // e.g., "scheduled", "manual"
}
