package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/Egor213/LogiBoard/internal/metrics"
	"github.com/Egor213/LogiBoard/internal/repo"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/Egor213/LogiBoard/pkg/timefmt"
)

// RegistrationListener is notified after the log service accepted an entry.
type RegistrationListener interface {
	LogRegistered(entry domain.LogEntry)
}

type LogService struct {
	logRepo  repo.Log
	listener RegistrationListener
	counters *metrics.Counters
	clock    func() time.Time
}

func NewLogService(lr repo.Log, listener RegistrationListener, cnt *metrics.Counters, clock func() time.Time) *LogService {
	if clock == nil {
		clock = time.Now
	}
	return &LogService{
		logRepo:  lr,
		listener: listener,
		counters: cnt,
		clock:    clock,
	}
}

// RegisterLog forwards reg to the log service. A missing timestamp is filled
// with the current time in the display zone.
func (s *LogService) RegisterLog(ctx context.Context, reg domain.LogRegistration) (domain.LogEntry, error) {
	if reg.Timestamp == "" {
		reg.Timestamp = timefmt.Now(s.clock)
	}

	entry, err := s.logRepo.RegisterLog(ctx, &reg)
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotRegisterLog, err))
	}

	if s.counters != nil {
		s.counters.LogsRegistered.Inc(entry.Service, entry.Level)
	}
	if s.listener != nil {
		s.listener.LogRegistered(entry)
	}

	return entry, nil
}
