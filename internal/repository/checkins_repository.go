package repository

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/limbo/lockin/pkg/entity"
)

type CheckInsRepository struct {
	kv  KV
	key string
}

func NewCheckInsRepo(kv KV, key string) *CheckInsRepository {
	if kv == nil {
		log.Fatal("provided nil kv store for checkInsRepo")
	}
	if key == "" {
		key = CheckInsKey
	}
	return &CheckInsRepository{
		kv:  kv,
		key: key,
	}
}

func (cr *CheckInsRepository) Load(ctx context.Context) ([]entity.CheckIn, error) {
	raw, ok, err := cr.kv.Get(ctx, cr.key)
	if err != nil {
		return nil, errors.New("loading check-ins error: " + err.Error())
	}
	if !ok {
		return []entity.CheckIn{}, nil
	}
	checkIns, err := decodeCheckIns([]byte(raw))
	if err != nil {
		slog.Warn("stored check-ins document is unreadable, starting empty",
			slog.String("key", cr.key),
			slog.String("error", err.Error()),
		)
		return []entity.CheckIn{}, nil
	}
	return checkIns, nil
}

func (cr *CheckInsRepository) Save(ctx context.Context, checkIns []entity.CheckIn) error {
	if checkIns == nil {
		checkIns = []entity.CheckIn{}
	}
	doc, err := sonic.Marshal(checkIns)
	if err != nil {
		return errors.New("encoding check-ins error: " + err.Error())
	}
	if err := cr.kv.Set(ctx, cr.key, string(doc)); err != nil {
		return errors.New("saving check-ins error: " + err.Error())
	}
	return nil
}
