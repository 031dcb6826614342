package healthz

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httperrors"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// pingTimeout bounds the database check so that a hanging
// connection makes the check fail instead of blocking the probe.
const pingTimeout = 3 * time.Second

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
	r.HEAD("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Checks that the database is reachable. Returns an error if it is not
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object} httperrors.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		httperrors.Handler(c, fmt.Errorf("%w: %w", models.ErrGeneral, err))
		return
	}

	c.Status(http.StatusNoContent)
}

func ping(ctx context.Context) error {
	if models.DB == nil {
		return fmt.Errorf("database is not connected")
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
