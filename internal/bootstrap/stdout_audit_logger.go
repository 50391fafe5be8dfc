package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger menulis event audit proses (start/stop) ke log
// terstruktur. Audit trail domain punya jalurnya sendiri lewat Kafka.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("audit.process")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info("audit event",
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
