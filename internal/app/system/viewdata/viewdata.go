// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
)

// DefaultSiteName is used when no name is configured.
const DefaultSiteName = "HelpBridge"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string
	UserID     int64

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string // Token for form submission

	// Queued notifications drained for this render
	Flashes []flash.Message
}

// DashboardURL returns the signed-in user's dashboard route, for nav links.
func (vm BaseVM) DashboardURL() string {
	return authz.DashboardPath(vm.Role)
}

// NewBaseVM creates a fully populated BaseVM for a page. Draining the flash
// queue writes a cookie, which is why w is needed.
//
// Parameters:
//   - w, r: the HTTP exchange being rendered
//   - flashes: the notification queue (can be nil in tests)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(w http.ResponseWriter, r *http.Request, flashes *flash.Queue, title, backDefault string) BaseVM {
	role, name, userID, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    DefaultSiteName,
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		UserID:      userID,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if flashes != nil {
		vm.Flashes = flashes.Pop(w, r)
	}

	return vm
}
