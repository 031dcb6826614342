package bot

// Update is an update delivered to the Telegram webhook. Only text
// messages are handled, all other fields are ignored.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	From      *From  `json:"from"`
	Text      string `json:"text"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type From struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Reply answers an update in the body of the webhook response with the
// sendMessage method.
type Reply struct {
	Method string `json:"method"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// NewReply returns a reply sending the text to the chat.
func NewReply(chatID int64, text string) *Reply {
	return &Reply{
		Method: "sendMessage",
		ChatID: chatID,
		Text:   text,
	}
}
