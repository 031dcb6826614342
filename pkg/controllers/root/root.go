package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs       string `json:"docs" example:"https://example.com/api/docs/index.html"`   // Swagger API documentation
	Healthz    string `json:"healthz" example:"https://example.com/api/healthz"`        // Healthz endpoint
	Version    string `json:"version" example:"https://example.com/api/version"`        // Endpoint returning the version of the backend
	Metrics    string `json:"metrics" example:"https://example.com/api/metrics"`        // Endpoint returning Prometheus metrics
	App        string `json:"app" example:"https://example.com/api/app"`                // Base path of the endpoints for budget members
	SuperAdmin string `json:"superAdmin" example:"https://example.com/api/super-admin"` // Base path of the administration endpoints
	Webhooks   string `json:"webhooks" example:"https://example.com/api/webhooks"`      // Base path of the payment and messaging webhooks
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:       url + "/docs/index.html",
			Healthz:    url + "/healthz",
			Version:    url + "/version",
			Metrics:    url + "/metrics",
			App:        url + "/app",
			SuperAdmin: url + "/super-admin",
			Webhooks:   url + "/webhooks",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
