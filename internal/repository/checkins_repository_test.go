package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/lockin/internal/repository"
	"github.com/limbo/lockin/pkg/entity"
)

func TestCheckInsLoad(t *testing.T) {
	ctx := context.Background()
	t.Run("absent document is an empty collection", func(t *testing.T) {
		repo := repository.NewCheckInsRepo(newMemKV(), "")
		checkIns, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, checkIns)
		assert.Empty(t, checkIns)
	})
	t.Run("malformed document is treated as absence", func(t *testing.T) {
		kv := newMemKV()
		kv.data[repository.CheckInsKey] = `nope`
		repo := repository.NewCheckInsRepo(kv, "")
		checkIns, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, checkIns)
	})
	t.Run("legacy numeric id survives as string", func(t *testing.T) {
		kv := newMemKV()
		kv.data[repository.CheckInsKey] = `[{
			"id": 1712345678902,
			"date": "2026-08-24",
			"feeling": "😊",
			"mood": 7,
			"note": "solid day",
			"timestamp": "2026-08-24T21:00:00.000Z"
		}]`
		repo := repository.NewCheckInsRepo(kv, "")
		checkIns, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.Len(t, checkIns, 1)
		assert.Equal(t, "1712345678902", checkIns[0].ID)
		assert.Equal(t, "😊", checkIns[0].Feeling)
		assert.Equal(t, 7, checkIns[0].Mood)
	})
	t.Run("kv error propagates", func(t *testing.T) {
		kv := newMemKV()
		kv.failGet = true
		repo := repository.NewCheckInsRepo(kv, "")
		_, err := repo.Load(ctx)
		assert.Error(t, err)
	})
}

func TestCheckInsSave(t *testing.T) {
	ctx := context.Background()
	checkIn := entity.CheckIn{
		ID:        "checkin-1",
		Date:      "2026-08-26",
		Feeling:   "🤩",
		Mood:      9,
		Note:      "locked in",
		Timestamp: time.Date(2026, 8, 26, 21, 30, 0, 0, time.UTC),
	}
	t.Run("round trips the collection", func(t *testing.T) {
		repo := repository.NewCheckInsRepo(newMemKV(), "")
		assert.NoError(t, repo.Save(ctx, []entity.CheckIn{checkIn}))
		loaded, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.CheckIn{checkIn}, loaded)
	})
	t.Run("nil collection persists as empty array", func(t *testing.T) {
		kv := newMemKV()
		repo := repository.NewCheckInsRepo(kv, "")
		assert.NoError(t, repo.Save(ctx, nil))
		assert.Equal(t, "[]", kv.data[repository.CheckInsKey])
	})
	t.Run("kv error propagates", func(t *testing.T) {
		kv := newMemKV()
		kv.failSet = true
		repo := repository.NewCheckInsRepo(kv, "")
		assert.Error(t, repo.Save(ctx, []entity.CheckIn{checkIn}))
	})
}
