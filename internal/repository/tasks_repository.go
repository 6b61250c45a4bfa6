package repository

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/limbo/lockin/pkg/dateutil"
	"github.com/limbo/lockin/pkg/entity"
)

type TasksRepository struct {
	kv  KV
	key string
}

func NewTasksRepo(kv KV, key string) *TasksRepository {
	if kv == nil {
		log.Fatal("provided nil kv store for tasksRepo")
	}
	if key == "" {
		key = TasksKey
	}
	return &TasksRepository{
		kv:  kv,
		key: key,
	}
}

// Load reads the stored task document and runs the migration step over
// every record. An absent document means an empty collection; so does an
// unparseable one, which only gets a warning because losing a corrupt
// document beats failing startup.
func (tr *TasksRepository) Load(ctx context.Context) ([]entity.Task, error) {
	raw, ok, err := tr.kv.Get(ctx, tr.key)
	if err != nil {
		return nil, errors.New("loading tasks error: " + err.Error())
	}
	if !ok {
		return []entity.Task{}, nil
	}
	tasks, err := decodeTasks([]byte(raw), dateutil.Today())
	if err != nil {
		slog.Warn("stored tasks document is unreadable, starting empty",
			slog.String("key", tr.key),
			slog.String("error", err.Error()),
		)
		return []entity.Task{}, nil
	}
	return tasks, nil
}

func (tr *TasksRepository) Save(ctx context.Context, tasks []entity.Task) error {
	if tasks == nil {
		tasks = []entity.Task{}
	}
	doc, err := sonic.Marshal(tasks)
	if err != nil {
		return errors.New("encoding tasks error: " + err.Error())
	}
	if err := tr.kv.Set(ctx, tr.key, string(doc)); err != nil {
		return errors.New("saving tasks error: " + err.Error())
	}
	return nil
}
