package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"fdrates/internal/domain/entity"
	"fdrates/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run forwards rate alerts from the channel until it closes or the context
// is cancelled.
func (b *TelegramBot) Run(ctx context.Context, alerts <-chan entity.RateAlert) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case alert, ok := <-alerts:
			if !ok {
				return nil
			}
			if err := b.SendAlert(ctx, alert); err != nil {
				logger(ctx).Error("failed to send alert", "error", err)
			}
		}
	}
}

func (b *TelegramBot) SendAlert(ctx context.Context, alert entity.RateAlert) error {
	direction := "📈"
	if alert.NewBest < alert.PreviousBest {
		direction = "📉"
	}

	text := fmt.Sprintf(
		"%s <b>%s</b>\n\n"+
			"Best FD rate moved: <b>%.2f%%</b> → <b>%.2f%%</b>\n"+
			"Records updated: %d",
		direction,
		alert.BankName,
		alert.PreviousBest,
		alert.NewBest,
		alert.RecordsUpdated,
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
