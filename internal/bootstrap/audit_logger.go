package bootstrap

import "context"

// AuditLog adalah catatan kejadian level server (startup, shutdown).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
