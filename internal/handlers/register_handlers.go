package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mjaros/beertracker/internal/core/domain"
	portssvc "github.com/mjaros/beertracker/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerBindingValidations()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerBeerEntryRoutes(v1, services.BeerEntry)
}

// registerBindingValidations registers the custom `currencycode` binding tag
// so unknown currencies are rejected before a request reaches the service.
func registerBindingValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseCurrencyCode(fl.Field().String())
			return err == nil
		})
	}
}
