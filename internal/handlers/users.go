package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"wims/internal/models"
	"wims/internal/selection"
	"wims/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// departmentOption is one entry of the department picker, labelled
// "Name (Code)".
type departmentOption struct {
	ID    uint
	Label string
}

func departmentOptions(departments []models.Department) []departmentOption {
	options := make([]departmentOption, 0, len(departments))
	for _, d := range departments {
		options = append(options, departmentOption{
			ID:    d.ID,
			Label: fmt.Sprintf("%s (%s)", d.Name, d.Code),
		})
	}
	return options
}

// roleOption is one entry of the role picker.
type roleOption struct {
	Value int
	Label string
}

func roleOptions() []roleOption {
	options := make([]roleOption, 0, len(models.Roles()))
	for _, r := range models.Roles() {
		options = append(options, roleOption{Value: int(r), Label: r.String()})
	}
	return options
}

func (h *UserHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

// renderList builds the user table page: display projection, department
// options and the select-all state derived from the session selection set.
func (h *UserHandler) renderList(c *gin.Context, status int, alert string) {
	users, err := h.users.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load users")
		return
	}
	departments, err := h.users.DepartmentOptions()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load departments")
		return
	}

	views := models.BuildUserList(users)
	displayed := make([]uint, 0, len(views))
	for _, v := range views {
		displayed = append(displayed, v.ID)
	}

	sel := currentSelection(c)
	selected := make(map[uint]bool, len(sel))
	for _, id := range sel.IDs() {
		selected[id] = true
	}

	render(c, status, "users_list.html", gin.H{
		"Users":       views,
		"Options":     departmentOptions(departments),
		"Selected":    selected,
		"AllSelected": sel.AllSelected(displayed),
		"error":       alert,
	})
}

// userForm carries the raw form values; coercion into a typed draft happens
// in toDraft.
type userForm struct {
	LoginID      string `form:"login_id"`
	Password     string `form:"password"`
	Email        string `form:"email"`
	Name         string `form:"name"`
	Role         string `form:"role"`
	DepartmentID string `form:"department_id"`
	Code         string `form:"code"`
	IsActive     string `form:"is_active"`
}

// toDraft coerces the submitted strings: role to the enum, department id to
// integer-or-nil, is_active from a truthy token.
func (f userForm) toDraft() (service.UserDraft, error) {
	draft := service.UserDraft{
		LoginID:  f.LoginID,
		Password: f.Password,
		Email:    f.Email,
		Name:     f.Name,
		Code:     f.Code,
	}

	if f.Role != "" {
		v, err := strconv.Atoi(f.Role)
		if err != nil {
			return draft, service.ErrValidation
		}
		role, ok := models.RoleFromValue(v)
		if !ok {
			return draft, service.ErrValidation
		}
		draft.Role = &role
	}

	if f.DepartmentID != "" {
		v, err := strconv.ParseUint(f.DepartmentID, 10, 32)
		if err != nil {
			return draft, service.ErrValidation
		}
		id := uint(v)
		draft.DepartmentID = &id
	}

	if f.IsActive != "" {
		active := f.IsActive == "true" || f.IsActive == "1"
		draft.IsActive = &active
	}

	return draft, nil
}

func (h *UserHandler) ShowNew(c *gin.Context) {
	h.renderForm(c, http.StatusOK, nil, "")
}

func (h *UserHandler) renderForm(c *gin.Context, status int, user *models.User, alert string) {
	departments, err := h.users.DepartmentOptions()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load departments")
		return
	}

	data := gin.H{
		"Options": departmentOptions(departments),
		"Roles":   roleOptions(),
		"IsEdit":  user != nil,
		"error":   alert,
	}
	if user != nil {
		data["User"] = user
	}
	render(c, status, "user_form.html", data)
}

func (h *UserHandler) Create(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, nil, "Invalid form data.")
		return
	}

	draft, err := form.toDraft()
	if err == nil {
		_, err = h.users.Create(draft)
	}
	if err != nil {
		if msg, ok := alertFor(err); ok {
			h.renderForm(c, http.StatusBadRequest, nil, msg)
			return
		}
		h.renderForm(c, http.StatusInternalServerError, nil, "Failed to save user.")
		return
	}

	c.Redirect(http.StatusFound, "/admin/users")
}

func (h *UserHandler) ShowEdit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		msg, _ := alertFor(err)
		if msg == "" {
			msg = "Failed to load user."
		}
		h.renderList(c, http.StatusNotFound, msg)
		return
	}

	h.renderForm(c, http.StatusOK, user, "")
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid form data.")
		return
	}

	draft, err := form.toDraft()
	var user *models.User
	if err == nil {
		user, err = h.users.Update(id, draft)
	}
	if err != nil {
		if msg, ok := alertFor(err); ok {
			h.renderForm(c, http.StatusBadRequest, user, msg)
			return
		}
		h.renderList(c, http.StatusInternalServerError, "Failed to save user.")
		return
	}

	c.Redirect(http.StatusFound, "/admin/users")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid user id.")
		return
	}

	if err := h.users.Delete(id); err != nil {
		msg, ok := alertFor(err)
		if !ok {
			msg = "Failed to delete user."
		}
		h.renderList(c, http.StatusBadRequest, msg)
		return
	}

	c.Redirect(http.StatusFound, "/admin/users")
}

// --- row selection ---

func currentSelection(c *gin.Context) selection.Set {
	sess := sessions.Default(c)
	if ids, ok := sess.Get("selected_users").([]uint); ok {
		return selection.FromIDs(ids)
	}
	return selection.New()
}

func saveSelection(c *gin.Context, sel selection.Set) {
	sess := sessions.Default(c)
	sess.Set("selected_users", sel.IDs())
	_ = sess.Save()
}

func (h *UserHandler) ToggleSelect(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	sel := currentSelection(c)
	sel.Toggle(id)
	saveSelection(c, sel)
	c.Redirect(http.StatusFound, "/admin/users")
}

// ToggleSelectAll selects every displayed user, or deselects them when all
// are already selected. Ids selected outside the current view stay put.
func (h *UserHandler) ToggleSelectAll(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load users")
		return
	}
	displayed := make([]uint, 0, len(users))
	for _, u := range users {
		displayed = append(displayed, u.ID)
	}

	sel := currentSelection(c)
	sel.ToggleAll(displayed)
	saveSelection(c, sel)
	c.Redirect(http.StatusFound, "/admin/users")
}

func idParam(c *gin.Context) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(v), err
}
