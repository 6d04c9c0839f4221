package event

// ===============================
// Event Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusPostponed Status = "postponed"
	StatusFinished  Status = "finished"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusCancelled, StatusPostponed, StatusFinished:
		return true
	}
	return false
}
