package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
	portssvc "github.com/kerjapay/payroll_backend/internal/core/ports/services"
	"github.com/kerjapay/payroll_backend/internal/middleware"
	"github.com/kerjapay/payroll_backend/internal/platform/config"
)

// RegisterCustomValidators adds domain validations to gin's binding engine.
// Must run before any request binds a tag it registers.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("employee_type", func(fl validator.FieldLevel) bool {
			return domain.EmployeeType(fl.Field().String()).IsValid()
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies
// through service interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	RegisterCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	RegisterThrRoutes(v1, services.Thr, cfg)
}
