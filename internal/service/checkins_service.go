package service

import (
	"context"
	"log"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/lockin/internal/error_values"
	"github.com/limbo/lockin/internal/repository"
	"github.com/limbo/lockin/pkg/dateutil"
	"github.com/limbo/lockin/pkg/entity"
)

// Feelings a check-in may carry, worst to best.
var Feelings = []string{"😢", "😕", "😐", "🙂", "😊", "😄", "🤩"}

type CheckInRequest struct {
	Feeling string `validate:"required,oneof=😢 😕 😐 🙂 😊 😄 🤩"`
	Mood    int    `validate:"min=1,max=10"`
	Note    string `validate:"max=500"`
}

// CheckInsService owns the daily check-in collection. At most one
// check-in exists per date; saving replaces any prior record for that
// date.
type CheckInsService struct {
	mu       sync.Mutex
	repo     repository.CheckInsRepositoryI
	checkIns []entity.CheckIn
	now      func() time.Time
}

func NewCheckInsService(ctx context.Context, checkInsRepo repository.CheckInsRepositoryI) *CheckInsService {
	return NewCheckInsServiceWithClock(ctx, checkInsRepo, time.Now)
}

func NewCheckInsServiceWithClock(ctx context.Context, checkInsRepo repository.CheckInsRepositoryI, now func() time.Time) *CheckInsService {
	if checkInsRepo == nil {
		log.Fatal("provided nil checkInsRepo")
	}
	checkIns, err := checkInsRepo.Load(ctx)
	if err != nil {
		slog.Warn("loading check-ins failed, starting empty", slog.String("error", err.Error()))
		checkIns = []entity.CheckIn{}
	}
	return &CheckInsService{
		repo:     checkInsRepo,
		checkIns: checkIns,
		now:      now,
	}
}

// SaveCheckIn validates and stores a check-in for date (today when
// empty), replacing any existing record for that date.
func (cs *CheckInsService) SaveCheckIn(ctx context.Context, date string, req *CheckInRequest) (*entity.CheckIn, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidCheckIn
	}
	if date == "" {
		date = dateutil.CanonicalDate(cs.now())
	}
	if _, err := dateutil.Parse(date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	if err := validate.Struct(req); err != nil {
		return nil, errorvalues.ErrInvalidCheckIn
	}
	checkIn := entity.CheckIn{
		ID:        uuid.NewString(),
		Date:      date,
		Feeling:   req.Feeling,
		Mood:      req.Mood,
		Note:      req.Note,
		Timestamp: cs.now(),
	}
	cs.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(cs.checkIns), func(c entity.CheckIn) bool {
		return c.Date == date
	})
	cs.checkIns = append(next, checkIn)
	cs.mu.Unlock()
	cs.persist(ctx)
	return &checkIn, nil
}

// CheckInFor returns the check-in recorded for date (today when empty).
func (cs *CheckInsService) CheckInFor(date string) (*entity.CheckIn, error) {
	if date == "" {
		date = dateutil.CanonicalDate(cs.now())
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, c := range cs.checkIns {
		if c.Date == date {
			return &c, nil
		}
	}
	return nil, errorvalues.ErrCheckInNotFound
}

// CheckIns returns a snapshot of all recorded check-ins in order.
func (cs *CheckInsService) CheckIns() []entity.CheckIn {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return slices.Clone(cs.checkIns)
}

func (cs *CheckInsService) persist(ctx context.Context) {
	cs.mu.Lock()
	snapshot := cs.checkIns
	cs.mu.Unlock()
	if err := cs.repo.Save(ctx, snapshot); err != nil {
		slog.Warn("saving check-ins failed, in-memory state kept", slog.String("error", err.Error()))
	}
}
