package domain

import "time"

// AuditEvent is a single entry from the audit trail. The engine only reads
// these; writing audit entries is the responsibility of the upstream system.
type AuditEvent struct {
	ID       string
	UserID   string
	UserName string
	Action   string
	Success  bool

	// CreatedAt is the event timestamp. Sequences handed to the anomaly
	// detector are expected to be non-decreasing in this field.
	CreatedAt time.Time
}
