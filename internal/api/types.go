package api

import (
	"encoding/json"
	"strings"
)

// UnmarshalJSON normalizes any backend casing into the canonical Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}

// UserStatus is an account's approval state, owned entirely by the backend.
// The client only requests transitions (approve, reject, suspend).
type UserStatus string

const (
	UserPending   UserStatus = "Pending"
	UserApproved  UserStatus = "Approved"
	UserRejected  UserStatus = "Rejected"
	UserSuspended UserStatus = "Suspended"
	UserActive    UserStatus = "Active"
)

// UnmarshalJSON canonicalizes the backend's account-status casing.
func (s *UserStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING":
		*s = UserPending
	case "APPROVED":
		*s = UserApproved
	case "REJECTED":
		*s = UserRejected
	case "SUSPENDED":
		*s = UserSuspended
	case "ACTIVE":
		*s = UserActive
	default:
		*s = UserStatus(strings.TrimSpace(raw))
	}
	return nil
}

// UserRef is an embedded reference to a user inside another record.
type UserRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	City     string `json:"city,omitempty"`
}

// UserRecord is an admin-visible account. The document path field differs
// per role on the backend (idProofPath for volunteers, and so on); whichever
// is present is surfaced as the record's document.
type UserRecord struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Status      UserStatus `json:"status"`
	City        string     `json:"city,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`

	IDProofPath     string `json:"idProofPath,omitempty"`
	RegistrationDoc string `json:"registrationDocumentPath,omitempty"`
	DisabilityCert  string `json:"disabilityCertificatePath,omitempty"`
}

// DocumentPath returns whichever role-specific document the record carries.
func (u UserRecord) DocumentPath() string {
	for _, p := range []string{u.IDProofPath, u.RegistrationDoc, u.DisabilityCert} {
		if p != "" {
			return p
		}
	}
	return ""
}

// HelpRequest is a beneficiary-submitted service request. Transient copy;
// the backend owns the status lifecycle.
type HelpRequest struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description"`
	Status         Status   `json:"status"`
	RequestDate    string   `json:"requestDate,omitempty"` // "2006-01-02"
	RequestTime    string   `json:"requestTime,omitempty"` // "15:04:05"
	ScheduledAt    string   `json:"scheduledAt,omitempty"`
	City           string   `json:"city,omitempty"`
	Location       string   `json:"location,omitempty"`
	Feedback       string   `json:"feedback,omitempty"`
	FundsAllocated float64  `json:"fundsAllocated"`
	Student        *UserRef `json:"student,omitempty"`
	Volunteer      *UserRef `json:"volunteer,omitempty"`
	NGO            *UserRef `json:"ngo,omitempty"`
}

// Campaign is an NGO-posted donation need (a "help post" on the wire).
type Campaign struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category,omitempty"`
	City            string   `json:"city,omitempty"`
	Status          string   `json:"status,omitempty"`
	TargetAmount    float64  `json:"targetAmount"`
	CollectedAmount float64  `json:"collectedAmount"`
	NGO             *UserRef `json:"ngo,omitempty"`
}

// Progress returns the collected fraction in percent, clamped to [0,100].
func (c Campaign) Progress() int {
	if c.TargetAmount <= 0 {
		return 0
	}
	pct := int(c.CollectedAmount / c.TargetAmount * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// PaymentOrder is the ephemeral gateway order created per donation attempt.
// Amount is in the gateway's minor unit (paise). Mock marks the backend's
// no-gateway fallback: the client may simulate success instead of opening
// the real checkout.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status,omitempty"`
	Mock     bool   `json:"mock,omitempty"`
}

// RoleStats is one role's slice of the admin dashboard summary.
type RoleStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

// AdminSummary is the backend-computed dashboard summary for admins.
type AdminSummary struct {
	Students   RoleStats `json:"students"`
	Volunteers RoleStats `json:"volunteers"`
	NGOs       RoleStats `json:"ngos"`
	Donors     RoleStats `json:"donors"`
}

// Empty reports whether every count is zero, which is when the demo-data
// seed affordance is shown.
func (s AdminSummary) Empty() bool {
	return s.Students.Total == 0 && s.Volunteers.Total == 0 &&
		s.NGOs.Total == 0 && s.Donors.Total == 0
}

// Activity is one entry of the admin recent-activity feed.
type Activity struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
	Type      string `json:"type,omitempty"`
}

// NGOStats are the NGO dashboard aggregates. The backend exposes no
// NGO-scoped summary endpoint, so these are reduced client-side from the
// full request and volunteer lists (see Client.NGODashboardStats).
type NGOStats struct {
	PendingRequests   int
	OngoingRequests   int
	CompletedRequests int
	ActiveVolunteers  int
	FundsAllocated    float64
}

// Session is the authenticated identity as returned by the login endpoint.
// The backend is inconsistent about field casing, so login responses are
// decoded through loginEnvelope and normalized exactly once, here.
type Session struct {
	UserID   int64
	FullName string
	Email    string
	Role     string
	Token    string
}

// loginEnvelope tolerates both casings the backend has been observed to
// send for role and token, and both id spellings.
type loginEnvelope struct {
	UserID    int64  `json:"userId"`
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	RoleUpper string `json:"Role"`
	Token     string `json:"token"`
	TokUpper  string `json:"Token"`
}

// session folds the envelope into a normalized Session.
func (e loginEnvelope) session() Session {
	s := Session{
		UserID:   e.UserID,
		FullName: e.FullName,
		Email:    e.Email,
		Role:     e.Role,
		Token:    e.Token,
	}
	if s.UserID == 0 {
		s.UserID = e.ID
	}
	if s.Role == "" {
		s.Role = e.RoleUpper
	}
	if s.Token == "" {
		s.Token = e.TokUpper
	}
	s.Role = strings.ToLower(strings.TrimSpace(s.Role))
	return s
}
