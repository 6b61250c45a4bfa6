package repository

import (
	"context"

	"github.com/limbo/lockin/pkg/entity"
)

type TasksRepositoryI interface {
	// Loads the full task collection. Absent or unreadable data yields an
	// empty collection, never an error the caller must handle at startup.
	Load(ctx context.Context) ([]entity.Task, error)
	// Rewrites the full task collection
	Save(ctx context.Context, tasks []entity.Task) error
}

type CheckInsRepositoryI interface {
	// Loads the full check-in collection
	Load(ctx context.Context) ([]entity.CheckIn, error)
	// Rewrites the full check-in collection
	Save(ctx context.Context, checkIns []entity.CheckIn) error
}

// KV is the narrow seam repositories depend on: a string key-value store
// holding whole JSON documents, one per collection.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Document keys, matching the names the collections have always been
// stored under.
const (
	TasksKey    = "lockin-tasks"
	CheckInsKey = "lockin-checkins"
)
