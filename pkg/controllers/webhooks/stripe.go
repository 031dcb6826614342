package webhooks

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/billing"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Stripe does not send events larger than this
const maxStripePayload = 65536

type stripeHandler struct {
	payments Payments
}

// @Summary		Stripe events
// @Description	Receives subscription events from Stripe. The payload must be signed with the webhook secret.
// @Tags			Webhooks
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Failure		503	{object}	httpError
// @Router			/webhooks/stripe [post]
func (h stripeHandler) handle(c *gin.Context) {
	if h.payments == nil {
		c.JSON(http.StatusServiceUnavailable, httpError{Error: billing.ErrDisabled.Error()})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStripePayload))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err = h.payments.HandleWebhook(models.DB, payload, c.GetHeader("Stripe-Signature"))
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, billing.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, httpError{Error: err.Error()})
	case errors.Is(err, billing.ErrSignature), errors.Is(err, billing.ErrEventMetadata):
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
	default:
		// Stripe retries the event on errors
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("stripe webhook failed")
		c.JSON(http.StatusInternalServerError, httpError{Error: "the event could not be processed"})
	}
}
