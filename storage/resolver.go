package storage

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/ds"
	"go.uber.org/zap"
)

// ConfigError marks faults in the provisioning configuration, as opposed to
// transient failures of the downstream services.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// ResolveContainers intersects the comma-separated allow-list with the
// containers actually present in the storage account, preserving allow-list
// order. The allow-list is validated before any network call is made.
func ResolveContainers(ctx context.Context, configured string, lister ContainerLister) ([]string, error) {
	if strings.TrimSpace(configured) == "" {
		return nil, &ConfigError{Reason: "BLOB_CONTAINERS is not set"}
	}

	var target []string
	for _, name := range strings.Split(configured, ",") {
		target = append(target, strings.TrimSpace(name))
	}

	available, err := lister.ListContainers(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Available containers in storage", zap.Strings("available", available))

	availableSet := ds.NewSet[string]()
	for _, name := range available {
		availableSet.Add(name)
	}

	var valid []string
	for _, name := range target {
		if availableSet.Contains(name) {
			valid = append(valid, name)
		}
	}

	if len(valid) == 0 {
		return nil, &ConfigError{Reason: "no valid containers found to index"}
	}

	logger.Info("Target containers to index", zap.Strings("containers", valid))
	return valid, nil
}
