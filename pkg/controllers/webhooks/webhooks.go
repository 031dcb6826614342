// Package webhooks receives events from third party services.
package webhooks

import (
	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/internal/config"
	"gorm.io/gorm"
)

// Payments verifies and applies payment provider events.
type Payments interface {
	HandleWebhook(db *gorm.DB, payload []byte, signature string) error
}

type httpError struct {
	Error string `json:"error" example:"the webhook signature could not be verified"`
}

// RegisterRoutes registers the webhook routes with the RouterGroup that
// is passed. payments may be nil when payments are not configured.
func RegisterRoutes(r *gin.RouterGroup, cfg config.Config, payments Payments) {
	stripe := stripeHandler{payments: payments}
	telegram := telegramHandler{
		token:  cfg.TelegramBotToken,
		secret: cfg.TelegramWebhookSecret,
	}

	r.POST("/stripe", stripe.handle)
	r.POST("/telegram", telegram.handle)
}
