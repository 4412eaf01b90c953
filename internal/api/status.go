package api

import "strings"

// Status is the canonical client-side help-request status. The backend is
// inconsistent about casing ("PENDING" vs "Pending", "IN_PROGRESS" vs
// "InProgress"), so every ingested status goes through NormalizeStatus and
// view code only ever compares Status values.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusAssigned   Status = "Assigned"
	StatusAccepted   Status = "Accepted"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusUnknown    Status = "Unknown"
)

// NormalizeStatus maps any backend casing of a request status onto the
// canonical enumeration. Unrecognized values map to StatusUnknown rather
// than being passed through, so typos surface instead of leaking raw
// strings into comparisons.
func NormalizeStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING":
		return StatusPending
	case "ASSIGNED":
		return StatusAssigned
	case "ACCEPTED":
		return StatusAccepted
	case "IN_PROGRESS", "INPROGRESS":
		return StatusInProgress
	case "COMPLETED":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// IsOngoing reports whether s counts as "in flight" for dashboard purposes:
// accepted by an NGO, assigned to a volunteer, or actively being worked.
func (s Status) IsOngoing() bool {
	return s == StatusAccepted || s == StatusAssigned || s == StatusInProgress
}

// String returns the canonical display form.
func (s Status) String() string { return string(s) }
