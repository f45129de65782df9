package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", nil)
}

// Placeholder renders a stub page for menu targets whose domain modules are
// not built yet (LIMS, INV).
func Placeholder(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "placeholder.html", gin.H{"Title": title})
	}
}
