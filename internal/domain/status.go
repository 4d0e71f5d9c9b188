package domain

// Status is the order lifecycle state. Pending is assigned at creation;
// Completed and Cancelled are terminal.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AllowedFrom lists the statuses an order may currently hold for a staff
// update to s. Pending is creation-only, so no transition re-enters it.
// Pending -> Completed (skipping Preparing) is permitted.
func (s Status) AllowedFrom() []Status {
	switch s {
	case StatusPreparing:
		return []Status{StatusPending}
	case StatusCompleted, StatusCancelled:
		return []Status{StatusPending, StatusPreparing}
	}
	return nil
}

func CanTransition(from, to Status) bool {
	for _, f := range to.AllowedFrom() {
		if f == from {
			return true
		}
	}
	return false
}
