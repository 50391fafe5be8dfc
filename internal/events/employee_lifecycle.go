package events

import "time"

const EmployeeLifecycleTopic = "plastindo.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeDeleted = "employee_deleted"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Actor      string    `json:"actor,omitempty"` // username admin yang melakukan aksi
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
