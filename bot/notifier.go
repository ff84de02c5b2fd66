package bot

import (
	"strings"

	"brewbot/contract"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers round notifications to the configured chat.
// Attachments are rendered as stacked text cards inside one message.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(api *tgbotapi.BotAPI, chatID int64) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

func (n *Notifier) Notify(text string, attachments ...contract.Attachment) error {
	var b strings.Builder
	b.WriteString(text)
	for _, a := range attachments {
		b.WriteString("\n\n")
		b.WriteString(a.AuthorName)
		if a.Text != "" {
			b.WriteString("\n" + a.Text)
		}
		if a.Footer != "" {
			b.WriteString("\n" + a.Footer)
		}
	}
	_, err := n.api.Send(tgbotapi.NewMessage(n.chatID, b.String()))
	return err
}
