package handlers

import (
	"net/http"

	"wims/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// ShowLogin renders the login page, or goes straight to the dashboard when
// the session is already authenticated.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	LoginID  string `form:"login_id"`
	Password string `form:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data."})
		return
	}

	user, err := h.auth.Login(form.LoginID, form.Password)
	if err != nil {
		if msg, ok := alertFor(err); ok {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": msg})
			return
		}
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Login failed, please retry."})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", int(user.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears all session state (auth, sidebar toggles, selection) and
// returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
