package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"wims/internal/models"
	"wims/internal/service"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departments *service.DepartmentService
}

func NewDepartmentHandler(departments *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

func (h *DepartmentHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *DepartmentHandler) renderList(c *gin.Context, status int, alert string) {
	departments, err := h.departments.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load departments")
		return
	}

	render(c, status, "departments_list.html", gin.H{
		"Departments": departments,
		"error":       alert,
	})
}

type departmentForm struct {
	Code      string `form:"code"`
	Name      string `form:"name"`
	Notes     string `form:"notes"`
	SortOrder string `form:"sort_order"`
	SiteList  string `form:"site_list"`
}

// toDraft coerces sort order to integer-or-nil and the site list from a
// comma-separated field into ids.
func (f departmentForm) toDraft() (service.DepartmentDraft, error) {
	draft := service.DepartmentDraft{
		Code:  f.Code,
		Name:  f.Name,
		Notes: f.Notes,
	}

	if f.SortOrder != "" {
		v, err := strconv.Atoi(f.SortOrder)
		if err != nil {
			return draft, service.ErrValidation
		}
		draft.SortOrder = &v
	}

	if f.SiteList != "" {
		parts := strings.Split(f.SiteList, ",")
		sites := make([]int64, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			site, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return draft, service.ErrValidation
			}
			sites = append(sites, site)
		}
		draft.SiteList = sites
	}

	return draft, nil
}

func (h *DepartmentHandler) ShowNew(c *gin.Context) {
	h.renderForm(c, http.StatusOK, nil, "")
}

func (h *DepartmentHandler) renderForm(c *gin.Context, status int, department *models.Department, alert string) {
	data := gin.H{
		"IsEdit": department != nil,
		"error":  alert,
	}
	if department != nil {
		data["Department"] = department
	}
	render(c, status, "department_form.html", data)
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var form departmentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, nil, "Invalid form data.")
		return
	}

	draft, err := form.toDraft()
	if err == nil {
		_, err = h.departments.Create(draft)
	}
	if err != nil {
		if msg, ok := alertFor(err); ok {
			h.renderForm(c, http.StatusBadRequest, nil, msg)
			return
		}
		h.renderForm(c, http.StatusInternalServerError, nil, "Failed to save department.")
		return
	}

	c.Redirect(http.StatusFound, "/admin/departments")
}

func (h *DepartmentHandler) ShowEdit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid department id.")
		return
	}

	department, err := h.departments.Get(id)
	if err != nil {
		msg, _ := alertFor(err)
		if msg == "" {
			msg = "Failed to load department."
		}
		h.renderList(c, http.StatusNotFound, msg)
		return
	}

	h.renderForm(c, http.StatusOK, department, "")
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid department id.")
		return
	}

	var form departmentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid form data.")
		return
	}

	draft, err := form.toDraft()
	var department *models.Department
	if err == nil {
		department, err = h.departments.Update(id, draft)
	}
	if err != nil {
		if msg, ok := alertFor(err); ok {
			h.renderForm(c, http.StatusBadRequest, department, msg)
			return
		}
		h.renderList(c, http.StatusInternalServerError, "Failed to save department.")
		return
	}

	c.Redirect(http.StatusFound, "/admin/departments")
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		h.renderList(c, http.StatusBadRequest, "Invalid department id.")
		return
	}

	if err := h.departments.Delete(id); err != nil {
		msg, ok := alertFor(err)
		if !ok {
			msg = "Failed to delete department."
		}
		h.renderList(c, http.StatusBadRequest, msg)
		return
	}

	c.Redirect(http.StatusFound, "/admin/departments")
}
