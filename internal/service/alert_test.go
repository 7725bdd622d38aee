package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/metrics"
	brokermocks "github.com/Egor213/LogiBoard/internal/mocks/broker"
	countermocks "github.com/Egor213/LogiBoard/internal/mocks/counters"
	repository_mock "github.com/Egor213/LogiBoard/internal/mocks/repository"
	"github.com/Egor213/LogiBoard/internal/repo/repotypes"
	"github.com/Egor213/LogiBoard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func alert(id, svc string, count, threshold int, active bool) domain.AlertData {
	return domain.AlertData{
		ID:        id,
		Service:   svc,
		Level:     "ERROR",
		Count:     count,
		Threshold: threshold,
		Timestamp: "2024-01-01T10:00:00",
		Active:    active,
	}
}

type alertMocks struct {
	journal  *repository_mock.MockAlertEvent
	producer *brokermocks.MockProducer
	gauge    *countermocks.MockGauge
}

func newAlertWatcher(t *testing.T) (*service.AlertWatcher, alertMocks) {
	ctrl := gomock.NewController(t)
	m := alertMocks{
		journal:  repository_mock.NewMockAlertEvent(ctrl),
		producer: brokermocks.NewMockProducer(ctrl),
		gauge:    countermocks.NewMockGauge(ctrl),
	}
	cnt := metrics.NewTestCounters()
	cnt.ActiveAlerts = m.gauge
	return service.NewAlertWatcher(m.journal, m.producer, cnt, fixedClock), m
}

func TestAlertWatcher_Transitions(t *testing.T) {
	w, m := newAlertWatcher(t)
	ctx := context.Background()

	gomock.InOrder(
		m.journal.EXPECT().SaveEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.AlertEvent) error {
				assert.Equal(t, "a1", e.AlertKey)
				assert.Equal(t, domain.AlertActivated, e.State)
				assert.Equal(t, domain.SeverityHigh, e.Severity)
				assert.Equal(t, fixedClock(), e.ObservedAt)
				assert.NotEmpty(t, e.ID)
				return nil
			}),
		m.journal.EXPECT().SaveEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.AlertEvent) error {
				assert.Equal(t, "a1", e.AlertKey)
				assert.Equal(t, domain.AlertResolved, e.State)
				return nil
			}),
	)
	m.producer.EXPECT().SendMessage(ctx, []byte("a1"), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _, value []byte) error {
			var e domain.AlertEvent
			require.NoError(t, json.Unmarshal(value, &e))
			assert.Equal(t, "auth", e.Service)
			return nil
		})

	gomock.InOrder(
		m.gauge.EXPECT().Reset(),
		m.gauge.EXPECT().Set(float64(1), "auth"),
		m.gauge.EXPECT().Reset(),
		m.gauge.EXPECT().Reset(),
	)

	w.Observe(ctx, domain.Filter{}, []domain.AlertData{
		alert("a1", "auth", 160, 100, true),
		alert("a2", "billing", 10, 100, false),
	})
	w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("a1", "auth", 90, 100, false)})
	w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("a1", "auth", 80, 100, false)})
}

func TestAlertWatcher_FilteredPollKeepsOtherAlerts(t *testing.T) {
	w, m := newAlertWatcher(t)
	ctx := context.Background()

	m.journal.EXPECT().SaveEvent(ctx, gomock.Any()).Return(nil).Times(1)
	m.producer.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.gauge.EXPECT().Reset().Times(2)
	m.gauge.EXPECT().Set(float64(1), "auth").Times(2)

	w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("a1", "auth", 200, 100, true)})
	w.Observe(ctx, domain.Filter{Service: "billing"}, nil)
	assert.Equal(t, 1, w.Tracked())
	w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("a1", "auth", 210, 100, true)})
}

func TestAlertWatcher_UnfilteredPollForgetsMissingAlerts(t *testing.T) {
	w, m := newAlertWatcher(t)
	ctx := context.Background()

	const polls = 500
	m.journal.EXPECT().SaveEvent(ctx, gomock.Any()).Return(nil).Times(polls)
	m.producer.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(polls)
	m.gauge.EXPECT().Reset().Times(polls)
	m.gauge.EXPECT().Set(float64(1), "api").Times(polls)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < polls; i++ {
		a := alert("", "api", 120, 100, true)
		a.Timestamp = start.Add(time.Duration(i) * time.Minute).Format("2006-01-02T15:04:05")
		w.Observe(ctx, domain.Filter{}, []domain.AlertData{a})
	}

	assert.Equal(t, 1, w.Tracked())
}

func TestAlertWatcher_ForgottenAlertActivatesAgain(t *testing.T) {
	w, m := newAlertWatcher(t)
	ctx := context.Background()

	m.journal.EXPECT().SaveEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.AlertEvent) error {
			assert.Equal(t, domain.AlertActivated, e.State)
			return nil
		}).Times(2)
	m.producer.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		m.gauge.EXPECT().Reset(),
		m.gauge.EXPECT().Set(float64(1), "auth"),
		m.gauge.EXPECT().Reset(),
		m.gauge.EXPECT().Reset(),
		m.gauge.EXPECT().Set(float64(1), "auth"),
	)

	w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("a1", "auth", 200, 100, true)})
	w.Observe(ctx, domain.Filter{}, nil)
	assert.Zero(t, w.Tracked())
	w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("a1", "auth", 200, 100, true)})
}

func TestAlertWatcher_FailuresAreNotFatal(t *testing.T) {
	w, m := newAlertWatcher(t)
	ctx := context.Background()

	m.journal.EXPECT().SaveEvent(ctx, gomock.Any()).Return(errors.New("db down"))
	m.producer.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	m.gauge.EXPECT().Reset()
	m.gauge.EXPECT().Set(float64(1), "auth")

	assert.NotPanics(t, func() {
		w.Observe(ctx, domain.Filter{}, []domain.AlertData{alert("", "auth", 100, 100, true)})
	})
}

func TestAlertWatcher_GetAlertHistory(t *testing.T) {
	type mockBehavior func(r *repository_mock.MockAlertEvent, filter repotypes.AlertEventFilter)

	events := []domain.AlertEvent{
		{ID: "e2", AlertKey: "a1", State: domain.AlertResolved, ObservedAt: time.Unix(20, 0)},
		{ID: "e1", AlertKey: "a1", State: domain.AlertActivated, ObservedAt: time.Unix(10, 0)},
	}

	testCases := []struct {
		name         string
		filter       repotypes.AlertEventFilter
		mockBehavior mockBehavior
		want         []domain.AlertEvent
		wantErr      bool
	}{
		{
			name:   "success",
			filter: repotypes.AlertEventFilter{Service: "auth", Limit: 10},
			mockBehavior: func(r *repository_mock.MockAlertEvent, filter repotypes.AlertEventFilter) {
				r.EXPECT().GetEvents(gomock.Any(), filter).Return(events, nil)
			},
			want: events,
		},
		{
			name:   "journal error",
			filter: repotypes.AlertEventFilter{},
			mockBehavior: func(r *repository_mock.MockAlertEvent, filter repotypes.AlertEventFilter) {
				r.EXPECT().GetEvents(gomock.Any(), filter).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, m := newAlertWatcher(t)
			tc.mockBehavior(m.journal, tc.filter)

			got, err := w.GetAlertHistory(context.Background(), tc.filter)
			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrCannotGetAlertHistory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
