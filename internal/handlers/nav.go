package handlers

import (
	"net/http"

	"wims/internal/menu"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// The sidebar state lives in the session so the handlers stay stateless and
// the toggles reset with the browser session, like the rest of the UI state.

func currentNav(c *gin.Context) menu.NavState {
	sess := sessions.Default(c)
	nav := menu.DefaultNav()
	if v, ok := sess.Get("sidebar_open").(bool); ok {
		nav.SidebarOpen = v
	}
	if v, ok := sess.Get("open_submenu").(string); ok {
		nav.OpenSubmenu = v
	}
	return nav
}

func saveNav(c *gin.Context, nav menu.NavState) {
	sess := sessions.Default(c)
	sess.Set("sidebar_open", nav.SidebarOpen)
	sess.Set("open_submenu", nav.OpenSubmenu)
	_ = sess.Save()
}

// backTo returns where a toggle endpoint should send the browser after it
// has updated session state.
func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/dashboard"
}

func ToggleSidebar(c *gin.Context) {
	nav := currentNav(c)
	nav.ToggleSidebar()
	saveNav(c, nav)
	c.Redirect(http.StatusFound, backTo(c))
}

// MenuClick applies a click on a top-level menu entry: submenu entries toggle
// their expansion, leaf entries navigate to their URL.
func MenuClick(c *gin.Context) {
	item, ok := menu.Find(menu.Default(), c.Param("name"))
	if !ok {
		c.Redirect(http.StatusFound, backTo(c))
		return
	}

	nav := currentNav(c)
	url := nav.HandleClick(item)
	saveNav(c, nav)

	if url != "" {
		c.Redirect(http.StatusFound, url)
		return
	}
	c.Redirect(http.StatusFound, backTo(c))
}
