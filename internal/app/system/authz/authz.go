// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, backend user ID, and a
// found flag. If no user is present in context, it returns "visitor", "", 0,
// false. Callers can trust that ok=true means a valid, authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID int64, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", 0, false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// Token returns the backend bearer token for the current user, or "" when
// the request is unauthenticated.
func Token(r *http.Request) string {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return ""
	}
	return user.Token
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// IsStudent reports whether the current request's user is a student.
func IsStudent(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "student"
}

// IsVolunteer reports whether the current request's user is a volunteer.
func IsVolunteer(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "volunteer"
}

// IsNGO reports whether the current request's user is an NGO.
func IsNGO(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "ngo"
}

// IsDonor reports whether the current request's user is a donor.
func IsDonor(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "donor"
}
