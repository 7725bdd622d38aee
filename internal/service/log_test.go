package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/metrics"
	countermocks "github.com/Egor213/LogiBoard/internal/mocks/counters"
	repository_mock "github.com/Egor213/LogiBoard/internal/mocks/repository"
	"github.com/Egor213/LogiBoard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingListener struct {
	mu      sync.Mutex
	entries []domain.LogEntry
}

func (l *recordingListener) LogRegistered(entry domain.LogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
}

func TestLogService_RegisterLog(t *testing.T) {
	type mockBehavior func(r *repository_mock.MockLog, c *countermocks.MockCounter, reg domain.LogRegistration)

	upstreamErr := errors.New("status 503")

	testCases := []struct {
		name         string
		reg          domain.LogRegistration
		mockBehavior mockBehavior
		want         domain.LogEntry
		wantErr      error
	}{
		{
			name: "success",
			reg: domain.LogRegistration{
				Service:   "auth",
				Level:     "ERROR",
				Message:   "token expired",
				Timestamp: "2024-01-01T10:00:00",
			},
			mockBehavior: func(r *repository_mock.MockLog, c *countermocks.MockCounter, reg domain.LogRegistration) {
				r.EXPECT().RegisterLog(gomock.Any(), &reg).
					Return(domain.LogEntry{Service: "auth", Level: "ERROR", Count: 1, Timestamp: reg.Timestamp}, nil)
				c.EXPECT().Inc("auth", "ERROR")
			},
			want: domain.LogEntry{Service: "auth", Level: "ERROR", Count: 1, Timestamp: "2024-01-01T10:00:00"},
		},
		{
			name: "missing timestamp defaults to now",
			reg: domain.LogRegistration{
				Service: "api",
				Level:   "INFO",
				Message: "started",
			},
			mockBehavior: func(r *repository_mock.MockLog, c *countermocks.MockCounter, _ domain.LogRegistration) {
				r.EXPECT().RegisterLog(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reg *domain.LogRegistration) (domain.LogEntry, error) {
						assert.Equal(t, "2024-03-01T09:00:00", reg.Timestamp)
						return domain.LogEntry{Service: reg.Service, Level: reg.Level, Count: 1, Timestamp: reg.Timestamp}, nil
					})
				c.EXPECT().Inc("api", "INFO")
			},
			want: domain.LogEntry{Service: "api", Level: "INFO", Count: 1, Timestamp: "2024-03-01T09:00:00"},
		},
		{
			name: "upstream error",
			reg: domain.LogRegistration{
				Service: "api",
				Level:   "INFO",
				Message: "started",
			},
			mockBehavior: func(r *repository_mock.MockLog, _ *countermocks.MockCounter, _ domain.LogRegistration) {
				r.EXPECT().RegisterLog(gomock.Any(), gomock.Any()).Return(domain.LogEntry{}, upstreamErr)
			},
			wantErr: service.ErrCannotRegisterLog,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := repository_mock.NewMockLog(ctrl)
			mockCounter := countermocks.NewMockCounter(ctrl)
			tc.mockBehavior(mockRepo, mockCounter, tc.reg)

			cnt := metrics.NewTestCounters()
			cnt.LogsRegistered = mockCounter
			listener := &recordingListener{}

			s := service.NewLogService(mockRepo, listener, cnt, fixedClock)
			got, err := s.RegisterLog(context.Background(), tc.reg)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, upstreamErr)
				assert.Empty(t, listener.entries)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, []domain.LogEntry{tc.want}, listener.entries)
		})
	}
}
