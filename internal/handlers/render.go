package handlers

import (
	"errors"

	"wims/internal/menu"
	"wims/internal/models"
	"wims/internal/service"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and hands every template the current user, the menu
// filtered to their role and the sidebar state.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentLoginID"] = u.LoginID
			data["CurrentRole"] = u.Role.String()
			data["Menu"] = menu.Filter(menu.Default(), u.Role)

			nav := currentNav(c)
			data["SidebarOpen"] = nav.SidebarOpen
			data["OpenSubmenu"] = nav.OpenSubmenu
		}
	}

	c.HTML(status, tmpl, data)
}

// alertFor maps a service error onto the alert string shown to the user.
// The second return is false for errors outside the taxonomy.
func alertFor(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return "Please fill in all required fields.", true
	case errors.Is(err, service.ErrDuplicateLoginID):
		return "This login ID is already in use.", true
	case errors.Is(err, service.ErrDuplicateEmail):
		return "This email is already registered.", true
	case errors.Is(err, service.ErrDuplicateCode):
		return "This department code is already in use.", true
	case errors.Is(err, service.ErrDuplicateName):
		return "This department name is already in use.", true
	case errors.Is(err, service.ErrNotFound):
		return "Record not found. The list may be out of date.", true
	case errors.Is(err, service.ErrProtectedRole):
		return "Admin accounts cannot be deleted.", true
	case errors.Is(err, service.ErrHasDependents):
		return "This department still has users and cannot be deleted.", true
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid login ID or password.", true
	}
	return "", false
}
