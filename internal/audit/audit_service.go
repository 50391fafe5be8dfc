package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecordRequest struct {
	Action     string
	Actor      string
	EntityType string
	EntityID   string
	Detail     string
	RequestID  string
}

type EntryResponse struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	Actor      string `json:"actor,omitempty"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Detail     string `json:"detail,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordRequest) error
	GetRecent(ctx context.Context, limit int) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, req RecordRequest) error {
	entry := &AuditLog{
		ID:         uuid.New(),
		Action:     req.Action,
		Actor:      req.Actor,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Detail:     req.Detail,
		RequestID:  req.RequestID,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("record audit entry failed",
			zap.String("action", req.Action),
			zap.String("entity_id", req.EntityID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]EntryResponse, error) {
	entries, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = EntryResponse{
			ID:         e.ID.String(),
			Action:     e.Action,
			Actor:      e.Actor,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			RequestID:  e.RequestID,
			CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}
