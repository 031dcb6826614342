package bot

import "time"

func (b *Bot) SetNow(now func() time.Time) {
	b.now = now
}
