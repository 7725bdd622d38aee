package logginghelper

import (
	"github.com/Egor213/LogiBoard/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogReceived(reg *domain.LogRegistration, requestID string) {
	log.WithFields(log.Fields{
		"service":    reg.Service,
		"level":      reg.Level,
		"message":    reg.Message,
		"request_id": requestID,
	}).Info("Received log registration")
}

func LogRegistered(entry domain.LogEntry, requestID string) {
	log.WithFields(log.Fields{
		"service":    entry.Service,
		"level":      entry.Level,
		"timestamp":  entry.Timestamp,
		"request_id": requestID,
	}).Info("Log registered successfully")
}

func LogInvalid(reg *domain.LogRegistration, err error) {
	log.WithFields(log.Fields{
		"service": reg.Service,
		"level":   reg.Level,
		"error":   err,
	}).Warn("Rejected log registration")
}

func LogError(reg *domain.LogRegistration, err error) {
	log.WithFields(log.Fields{
		"service": reg.Service,
		"level":   reg.Level,
		"error":   err,
	}).Error("Failed to register log")
}

func LogFilterChanged(f domain.Filter, requestID string) {
	log.WithFields(log.Fields{
		"request_id": requestID,
		"service":    f.Service,
		"level":      f.Level,
	}).Info("Dashboard filter changed")
}
