package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/lockin/internal/error_values"
	"github.com/limbo/lockin/internal/service"
	"github.com/limbo/lockin/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

type checkInsRepoMock struct {
	state   mockState
	initial []entity.CheckIn
	saved   [][]entity.CheckIn
}

func (m *checkInsRepoMock) Load(ctx context.Context) ([]entity.CheckIn, error) {
	if m.state == stateLoadError {
		return nil, errors.New("kv error")
	}
	return m.initial, nil
}

func (m *checkInsRepoMock) Save(ctx context.Context, checkIns []entity.CheckIn) error {
	if m.state == stateSaveError {
		return errors.New("kv error")
	}
	m.saved = append(m.saved, checkIns)
	return nil
}

func newCheckInsService(mock *checkInsRepoMock) *service.CheckInsService {
	return service.NewCheckInsServiceWithClock(context.Background(), mock, testClock)
}

func TestSaveCheckIn(t *testing.T) {
	ctx := context.Background()
	t.Run("first save of the day", func(t *testing.T) {
		mock := &checkInsRepoMock{}
		serv := newCheckInsService(mock)
		checkIn, err := serv.SaveCheckIn(ctx, "", &service.CheckInRequest{
			Feeling: "😊",
			Mood:    7,
			Note:    "good flow",
		})
		assert.NoError(t, err)
		assert.Equal(t, testToday, checkIn.Date)
		assert.NotEmpty(t, checkIn.ID)
		assert.Len(t, mock.saved, 1)

		found, err := serv.CheckInFor("")
		assert.NoError(t, err)
		assert.Equal(t, 7, found.Mood)
	})
	t.Run("saving again replaces the day's record", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		_, err := serv.SaveCheckIn(ctx, "", &service.CheckInRequest{Feeling: "😐", Mood: 4})
		assert.NoError(t, err)
		_, err = serv.SaveCheckIn(ctx, "", &service.CheckInRequest{Feeling: "🤩", Mood: 9})
		assert.NoError(t, err)

		all := serv.CheckIns()
		assert.Len(t, all, 1)
		assert.Equal(t, 9, all[0].Mood)
		assert.Equal(t, "🤩", all[0].Feeling)
	})
	t.Run("explicit date", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		checkIn, err := serv.SaveCheckIn(ctx, "2026-08-20", &service.CheckInRequest{Feeling: "🙂", Mood: 6})
		assert.NoError(t, err)
		assert.Equal(t, "2026-08-20", checkIn.Date)

		found, err := serv.CheckInFor("2026-08-20")
		assert.NoError(t, err)
		assert.Equal(t, 6, found.Mood)
		// other dates stay independent
		_, err = serv.CheckInFor("2026-08-21")
		assert.ErrorIs(t, err, errorvalues.ErrCheckInNotFound)
	})
	t.Run("unknown feeling", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		_, err := serv.SaveCheckIn(ctx, "", &service.CheckInRequest{Feeling: "meh", Mood: 5})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidCheckIn)
	})
	t.Run("mood outside 1-10", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		_, err := serv.SaveCheckIn(ctx, "", &service.CheckInRequest{Feeling: "😊", Mood: 0})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidCheckIn)
		_, err = serv.SaveCheckIn(ctx, "", &service.CheckInRequest{Feeling: "😊", Mood: 11})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidCheckIn)
	})
	t.Run("bad date", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		_, err := serv.SaveCheckIn(ctx, "today-ish", &service.CheckInRequest{Feeling: "😊", Mood: 5})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("nil request", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		_, err := serv.SaveCheckIn(ctx, "", nil)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidCheckIn)
	})
}

func TestCheckInFor(t *testing.T) {
	t.Run("loads existing records", func(t *testing.T) {
		mock := &checkInsRepoMock{initial: []entity.CheckIn{
			{ID: "c1", Date: "2026-08-25", Feeling: "😄", Mood: 8},
		}}
		serv := newCheckInsService(mock)
		found, err := serv.CheckInFor("2026-08-25")
		assert.NoError(t, err)
		assert.Equal(t, "c1", found.ID)
	})
	t.Run("nothing recorded", func(t *testing.T) {
		serv := newCheckInsService(&checkInsRepoMock{})
		_, err := serv.CheckInFor("")
		assert.ErrorIs(t, err, errorvalues.ErrCheckInNotFound)
	})
}

func TestCheckInPersistenceFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	serv := newCheckInsService(&checkInsRepoMock{state: stateSaveError})
	_, err := serv.SaveCheckIn(ctx, "", &service.CheckInRequest{Feeling: "😊", Mood: 5})
	assert.NoError(t, err)
	assert.Len(t, serv.CheckIns(), 1)
}
