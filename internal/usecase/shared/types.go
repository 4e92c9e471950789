package shared

// Notification job bookkeeping values stored in notification_jobs.
const (
	JobKindEmail               = "email"
	JobTopicReservationCreated = "reservation_created"

	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)
