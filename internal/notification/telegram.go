package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRequestCreated(
	ctx context.Context,
	initiator *domain.User,
	event *domain.Event,
	req *domain.ParticipationRequest,
) {
	text := fmt.Sprintf(
		"*Новая заявка на участие*\n\n"+"Мероприятие: %s\n"+"Статус заявки: %s",
		escape(event.Title), statusText(req.Status),
	)
	n.send(ctx, initiator.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestDecided(
	ctx context.Context,
	requester *domain.User,
	event *domain.Event,
	req *domain.ParticipationRequest,
) {
	text := fmt.Sprintf(
		"*Заявка рассмотрена*\n\n"+"Мероприятие: %s\n"+"Дата (время указано в UTC): %s\n"+"Статус заявки: %s",
		escape(event.Title), event.EventDate.Format(dateLayout), statusText(req.Status),
	)
	n.send(ctx, requester.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyEventModerated(ctx context.Context, initiator *domain.User, event *domain.Event) {
	verdict := "отклонено модератором"
	if event.State == domain.EventStatePublished {
		verdict = "опубликовано"
	}
	text := fmt.Sprintf(
		"*Мероприятие %s*\n\n"+"Мероприятие: %s\n"+"Дата (время указано в UTC): %s",
		verdict, escape(event.Title), event.EventDate.Format(dateLayout),
	)
	n.send(ctx, initiator.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func statusText(s domain.RequestStatus) string {
	switch s {
	case domain.RequestStatusConfirmed:
		return "подтверждена"
	case domain.RequestStatusRejected:
		return "отклонена"
	case domain.RequestStatusCanceled:
		return "отменена"
	default:
		return "ожидает подтверждения"
	}
}
