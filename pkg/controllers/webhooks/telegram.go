package webhooks

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/bot"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

const (
	telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"
	telegramErrorText    = "Something went wrong on our side. Please try again later."
)

type telegramHandler struct {
	token  string
	secret string
}

// @Summary		Telegram updates
// @Description	Receives updates for the chat bot from Telegram. The reply is sent in the response body.
// @Tags			Webhooks
// @Success		200	{object}	bot.Reply
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		503	{object}	httpError
// @Router			/webhooks/telegram [post]
func (h telegramHandler) handle(c *gin.Context) {
	if h.token == "" || h.secret == "" {
		c.JSON(http.StatusServiceUnavailable, httpError{Error: "the chat bot is not configured on this server"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(c.GetHeader(telegramSecretHeader)), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, httpError{Error: "the secret token is invalid"})
		return
	}

	var update bot.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	reply, err := bot.New(models.DB).Handle(update)
	if err != nil {
		// Telegram retries failed updates, the user gets an answer instead
		log.Error().Str("request-id", requestid.Get(c)).Int64("update", update.UpdateID).Err(err).Msg("telegram update failed")
		reply = bot.NewReply(update.Message.Chat.ID, telegramErrorText)
	}

	if reply == nil {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, reply)
}
