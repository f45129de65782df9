package server

import (
	"encoding/gob"
	"html/template"
	"net/http"

	"wims/internal/config"
	"wims/internal/database"
	"wims/internal/handlers"
	"wims/internal/logger"
	"wims/internal/middleware"
	"wims/internal/models"
	"wims/internal/repository"
	"wims/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	})
	r.LoadHTMLGlob("web/templates/*.html")

	// the selection set is stored in the cookie session as []uint
	gob.Register([]uint{})

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("wims_session", store))

	r.Use(middleware.InjectUser())

	userRepo := repository.NewUserRepository(database.DB)
	deptRepo := repository.NewDepartmentRepository(database.DB)

	authSvc := service.NewAuthService(userRepo, logger.L)
	userSvc := service.NewUserService(userRepo, deptRepo, logger.L)
	deptSvc := service.NewDepartmentService(deptRepo, userRepo, logger.L)

	authH := handlers.NewAuthHandler(authSvc)
	userH := handlers.NewUserHandler(userSvc)
	deptH := handlers.NewDepartmentHandler(deptSvc)

	// AUTH
	r.GET("/", authH.ShowLogin)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/dashboard", handlers.Dashboard)

	// SIDEBAR / MENU
	auth.POST("/ui/sidebar/toggle", handlers.ToggleSidebar)
	auth.POST("/ui/menu/:name", handlers.MenuClick)

	// USER ADMIN — admin only; the menu filter is cosmetic
	admin := auth.Group("/admin", middleware.RequireRole(models.RoleAdmin))

	admin.GET("/users", userH.List)
	admin.GET("/users/new", userH.ShowNew)
	admin.POST("/users/new", userH.Create)
	admin.GET("/users/:id/edit", userH.ShowEdit)
	admin.POST("/users/:id/edit", userH.Update)
	admin.POST("/users/:id/delete", userH.Delete)
	admin.POST("/users/select/:id", userH.ToggleSelect)
	admin.POST("/users/select-all", userH.ToggleSelectAll)

	// DEPARTMENT ADMIN
	admin.GET("/departments", deptH.List)
	admin.GET("/departments/new", deptH.ShowNew)
	admin.POST("/departments/new", deptH.Create)
	admin.GET("/departments/:id/edit", deptH.ShowEdit)
	admin.POST("/departments/:id/edit", deptH.Update)
	admin.POST("/departments/:id/delete", deptH.Delete)

	// LIMS / INV — menu targets, domains not built yet
	auth.GET("/lims/requests",
		middleware.RequireRole(models.RoleAdmin, models.RoleLabManager),
		handlers.Placeholder("Lab Requests"),
	)
	auth.GET("/lims/results",
		middleware.RequireRole(models.RoleAdmin, models.RoleLabAnalyst),
		handlers.Placeholder("Analysis Results"),
	)
	auth.GET("/inv/materials",
		middleware.RequireRole(models.RoleAdmin, models.RoleInventoryManager),
		handlers.Placeholder("Materials"),
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
