package provision

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/SaiNageswarS/indexer-core/appconfig"
	"github.com/SaiNageswarS/indexer-core/db"
	"github.com/SaiNageswarS/indexer-core/search"
	"github.com/SaiNageswarS/indexer-core/storage"
	"go.uber.org/zap"
)

// SearchAdmin is the slice of the search management API the orchestrator
// needs. The production implementation is *search.Client.
type SearchAdmin interface {
	CreateOrUpdateIndex(ctx context.Context, index search.Index) (search.Outcome, error)
	CreateOrUpdateDataSource(ctx context.Context, ds search.DataSource) (search.Outcome, error)
	CreateOrUpdateIndexer(ctx context.Context, indexer search.Indexer) (search.Outcome, error)
	RunIndexer(ctx context.Context, name string) (search.Outcome, error)
}

type Step struct {
	Resource   string `json:"resource"`
	Name       string `json:"name"`
	StatusCode int    `json:"statusCode"`
	Ok         bool   `json:"ok"`
}

type Result struct {
	Status     string   `json:"status"`
	Containers []string `json:"containers"`
	Steps      []Step   `json:"steps"`
}

// Orchestrator provisions the full pipeline: one index, one data source and
// one indexer per valid container. Every write is an idempotent upsert, so
// re-running with the same configuration issues identical requests.
type Orchestrator struct {
	ccfg             *appconfig.AppConfig
	search           SearchAdmin
	lister           storage.ContainerLister
	connectionString string
	mongo            odm.MongoClient
}

// mongo may be nil; run history is then skipped.
func ProvideOrchestrator(ccfg *appconfig.AppConfig, searchClient *search.Client, store *storage.BlobStore, mongo odm.MongoClient) *Orchestrator {
	return &Orchestrator{
		ccfg:             ccfg,
		search:           searchClient,
		lister:           store,
		connectionString: store.ConnectionString(),
		mongo:            mongo,
	}
}

// Run executes one provisioning pass. A non-2xx upsert response is recorded
// as a failed step and the pass continues; only configuration faults and
// transport failures return an error.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	logger.Info("Starting provisioning workflow", zap.String("index", o.ccfg.IndexName()))

	var steps []Step

	outcome, err := o.search.CreateOrUpdateIndex(ctx, search.DocumentIndex(o.ccfg.IndexName()))
	if err != nil {
		return nil, err
	}
	steps = append(steps, step("index", o.ccfg.IndexName(), outcome))

	containers, err := storage.ResolveContainers(ctx, o.ccfg.BlobContainers, o.lister)
	if err != nil {
		return nil, err
	}

	for _, container := range containers {
		outcome, err := o.search.CreateOrUpdateDataSource(ctx, search.BlobDataSource(container, o.connectionString))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step("datasource", search.DataSourceName(container), outcome))

		outcome, err = o.search.CreateOrUpdateIndexer(ctx, search.BlobIndexer(container, o.ccfg.IndexName()))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step("indexer", search.IndexerName(container), outcome))

		if o.ccfg.RunAfterCreate {
			outcome, err = o.search.RunIndexer(ctx, search.IndexerName(container))
			if err != nil {
				return nil, err
			}
			steps = append(steps, step("indexerRun", search.IndexerName(container), outcome))
		}
	}

	result := &Result{
		Status:     overallStatus(steps),
		Containers: containers,
		Steps:      steps,
	}

	o.recordRun(ctx, result)

	logger.Info("Provisioning complete",
		zap.String("status", result.Status),
		zap.Strings("containers", result.Containers))
	return result, nil
}

func step(resource, name string, outcome search.Outcome) Step {
	return Step{
		Resource:   resource,
		Name:       name,
		StatusCode: outcome.StatusCode,
		Ok:         outcome.Ok(),
	}
}

func overallStatus(steps []Step) string {
	for _, s := range steps {
		if !s.Ok {
			return "partial"
		}
	}
	return "success"
}

// recordRun persists the run summary best-effort. Provisioning already
// succeeded against the search service when this runs, so a history write
// failure is logged and swallowed.
func (o *Orchestrator) recordRun(ctx context.Context, result *Result) {
	if o.mongo == nil {
		return
	}

	run := db.NewRunModel()
	run.Status = result.Status
	run.Containers = result.Containers
	run.Steps = make([]db.StepModel, 0, len(result.Steps))
	for _, s := range result.Steps {
		run.Steps = append(run.Steps, db.StepModel{Resource: s.Resource, Name: s.Name, StatusCode: s.StatusCode, Ok: s.Ok})
	}
	run.CreatedOn = time.Now().Unix()

	if _, err := async.Await(odm.CollectionOf[db.RunModel](o.mongo, o.stateDatabase()).Save(ctx, *run)); err != nil {
		logger.Error("Failed to save provisioning run", zap.String("runId", run.ID), zap.Error(err))
	}
}

func (o *Orchestrator) stateDatabase() string {
	if o.ccfg.StateDatabase == "" {
		return "indexerCore"
	}
	return o.ccfg.StateDatabase
}
