// Package notify delivers operator notifications about submitted quotes and
// catalog problems.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
	"studioo/internal/i18n"
	"studioo/internal/presentation"
	"studioo/internal/usecase/interfaces"
)

// sender is the part of *tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts to the studio operators chat. Quote requests are
// followed by the quote PDF in the visitor language.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger *zap.Logger
}

var _ interfaces.INotifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier authorizes the bot, retrying with exponential backoff
// for up to maxWait while the Bot API is unreachable.
func NewTelegramNotifier(ctx context.Context, token string, chatID int64, maxWait time.Duration, logger *zap.Logger) (*TelegramNotifier, error) {
	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = maxWait

	var bot *tgbotapi.BotAPI
	err := backoff.RetryNotify(
		func() error {
			b, err := tgbotapi.NewBotAPI(token)
			if err != nil {
				return err
			}
			bot = b
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, d time.Duration) {
			logger.Warn("[notify][telegram] init_retry", zap.Error(err), zap.Duration("retry_in", d))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("[notify][telegram] bot_authorized",
		zap.String("username", bot.Self.UserName),
		zap.Int64("chat_id", chatID),
	)
	return newTelegramNotifier(bot, chatID, logger), nil
}

func newTelegramNotifier(bot sender, chatID int64, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}
}

func (n *TelegramNotifier) NotifyQuoteRequest(ctx context.Context, r entities.QuoteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, quoteRequestText(r))); err != nil {
		return fmt.Errorf("send quote request message: %w", err)
	}

	lang, err := i18n.Parse(r.Language)
	if err != nil {
		lang = i18n.English
	}
	pdf, err := presentation.GeneratePDF(presentation.NewDocument(r.Quote, lang))
	if err != nil {
		n.logger.Warn("[notify][telegram] pdf_failed", zap.String("quote_number", r.QuoteNumber), zap.Error(err))
		return nil
	}
	doc := tgbotapi.NewDocument(n.chatID, tgbotapi.FileBytes{Name: r.QuoteNumber + ".pdf", Bytes: pdf})
	if _, err := n.bot.Send(doc); err != nil {
		return fmt.Errorf("send quote pdf: %w", err)
	}
	return nil
}

func (n *TelegramNotifier) NotifyPricingAnomalies(ctx context.Context, sessionID string, anomalies []pricing.Anomaly) error {
	if len(anomalies) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Catalog miss in session %s:\n", sessionID)
	for _, a := range anomalies {
		fmt.Fprintf(&sb, "- %s\n", a)
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, sb.String())); err != nil {
		return fmt.Errorf("send anomalies message: %w", err)
	}
	return nil
}

func quoteRequestText(r entities.QuoteRequest) string {
	q := r.Quote
	var sb strings.Builder
	fmt.Fprintf(&sb, "New quote request %s\n", r.QuoteNumber)
	fmt.Fprintf(&sb, "%s\n", q.ProjectName)
	fmt.Fprintf(&sb, "Client: %s <%s> %s\n", q.ClientName, q.ClientEmail, q.ClientPhone)
	if q.ClientCompany != "" {
		fmt.Fprintf(&sb, "Company: %s\n", q.ClientCompany)
	}
	if r.ClientUserID != "" {
		sb.WriteString("Partner: yes\n")
	}
	for _, li := range q.LineItems {
		fmt.Fprintf(&sb, "- %s: %s\n", li.Description, presentation.FormatMoney(li.Total, q.Currency))
	}
	fmt.Fprintf(&sb, "Total: %s", presentation.FormatMoney(q.GrandTotal, q.Currency))
	return sb.String()
}

// Noop drops every notification. It is used when Telegram is not configured.
type Noop struct {
	logger *zap.Logger
}

var _ interfaces.INotifier = Noop{}

func NewNoop(logger *zap.Logger) Noop {
	return Noop{logger: logger}
}

func (n Noop) NotifyQuoteRequest(_ context.Context, r entities.QuoteRequest) error {
	n.logger.Debug("[notify][noop] quote_request", zap.String("quote_number", r.QuoteNumber))
	return nil
}

func (n Noop) NotifyPricingAnomalies(_ context.Context, sessionID string, anomalies []pricing.Anomaly) error {
	n.logger.Debug("[notify][noop] pricing_anomalies", zap.String("session_id", sessionID), zap.Int("count", len(anomalies)))
	return nil
}
