package consumer

import (
	"context"
	"encoding/json"

	"go-plastindo/internal/audit"
	"go-plastindo/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle membaca event lifecycle employee dan mencatatnya
// sebagai audit trail. Pesan yang tidak bisa di-decode langsung di-commit
// agar tidak memblokir partisi.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditService audit.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = auditService.Record(ctx, audit.RecordRequest{
			Action:     event.EventType,
			Actor:      event.Actor,
			EntityType: "employee",
			EntityID:   event.EmployeeID,
			Detail:     event.FullName,
			RequestID:  event.RequestID,
		})
		if err != nil {
			log.Error("record lifecycle audit failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee lifecycle event audited",
			zap.String("employee_id", event.EmployeeID),
			zap.String("event_type", event.EventType),
		)
	}
}
