package db

import "github.com/google/uuid"

// One upsert call against the search service. Non-2xx responses are kept
// here so partial provisioning failures stay visible after the run.
type StepModel struct {
	Resource   string `bson:"resource"` // index | datasource | indexer | indexerRun
	Name       string `bson:"name"`
	StatusCode int    `bson:"statusCode"`
	Ok         bool   `bson:"ok"`
}

type RunModel struct {
	ID         string      `bson:"_id"`
	Status     string      `bson:"status"` // success | partial
	Containers []string    `bson:"containers"`
	Steps      []StepModel `bson:"steps"`
	CreatedOn  int64       `bson:"createdOn"`
}

func NewRunModel() *RunModel {
	return &RunModel{
		ID: uuid.New().String(),
	}
}

func (m RunModel) Id() string {
	if len(m.ID) == 0 {
		return uuid.New().String()
	}
	return m.ID
}

func (m RunModel) CollectionName() string {
	return "provisionRuns"
}
