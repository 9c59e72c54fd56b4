package workflows

import (
	"time"

	"github.com/SaiNageswarS/indexer-core/provision"
	"github.com/SaiNageswarS/indexer-core/workers/activities"
	"go.temporal.io/sdk/workflow"
)

// ProvisionWorkflow runs one provisioning pass out-of-band, e.g. on a
// schedule. The pass is a single activity; all upserts inside it are
// idempotent, so workflow retries are safe.
func ProvisionWorkflow(ctx workflow.Context, input ProvisionWorkflowInput) (*provision.Result, error) {
	activityOpts := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute * 10,
	}
	ctx = workflow.WithActivityOptions(ctx, activityOpts)

	var result provision.Result
	err := workflow.ExecuteActivity(ctx, (*activities.Activities).Provision, input.Reason).Get(ctx, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
