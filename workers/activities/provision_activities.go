package activities

import (
	"context"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/indexer-core/provision"
	"go.uber.org/zap"
)

type Activities struct {
	orchestrator *provision.Orchestrator
}

func ProvideActivities(orchestrator *provision.Orchestrator) *Activities {
	return &Activities{orchestrator: orchestrator}
}

func (a *Activities) Provision(ctx context.Context, reason string) (*provision.Result, error) {
	logger.Info("Provisioning activity started", zap.String("reason", reason))

	result, err := a.orchestrator.Run(ctx)
	if err != nil {
		logger.Error("Provisioning activity failed", zap.String("reason", reason), zap.Error(err))
		return nil, err
	}

	return result, nil
}
