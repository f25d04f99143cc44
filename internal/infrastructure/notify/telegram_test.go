package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func sampleRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:          "req-1",
		QuoteNumber: "QSVI0Y0-AAAA",
		Language:    "en",
		Quote: entities.Quote{
			QuoteNumber:  "QSVI0Y0-AAAA",
			Engagement:   entities.ProjectEngagement(entities.ServicePhotography),
			ClientName:   "Jane Doe",
			ClientEmail:  "jane@example.com",
			ClientPhone:  "+971500000000",
			ProjectName:  "Photography - Event",
			LineItems:    []entities.LineItem{{Description: "Photography - Event (per hour)", Quantity: 2, Rate: 500, Total: 1000}},
			GrandTotal:   1000,
			Currency:     "AED",
			ValidityDays: 30,
		},
	}
}

func TestTelegramNotifier_NotifyQuoteRequest(t *testing.T) {
	bot := &fakeSender{}
	n := newTelegramNotifier(bot, 42, zap.NewNop())

	if err := n.NotifyQuoteRequest(context.Background(), sampleRequest()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(bot.sent) != 2 {
		t.Fatalf("expected message and document, got %d sends", len(bot.sent))
	}
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected a text message first, got %T", bot.sent[0])
	}
	if msg.ChatID != 42 || !strings.Contains(msg.Text, "QSVI0Y0-AAAA") || !strings.Contains(msg.Text, "AED 1,000.00") {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if _, ok := bot.sent[1].(tgbotapi.DocumentConfig); !ok {
		t.Fatalf("expected the quote pdf, got %T", bot.sent[1])
	}
}

func TestTelegramNotifier_SendError(t *testing.T) {
	n := newTelegramNotifier(&fakeSender{err: errors.New("telegram down")}, 42, zap.NewNop())

	if err := n.NotifyQuoteRequest(context.Background(), sampleRequest()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTelegramNotifier_NotifyPricingAnomalies(t *testing.T) {
	bot := &fakeSender{}
	n := newTelegramNotifier(bot, 42, zap.NewNop())

	if err := n.NotifyPricingAnomalies(context.Background(), "sess-1", nil); err != nil || len(bot.sent) != 0 {
		t.Fatalf("expected nothing sent for no anomalies")
	}

	anomalies := []pricing.Anomaly{{Engagement: "project/photography", Option: "addon:Drone"}}
	if err := n.NotifyPricingAnomalies(context.Background(), "sess-1", anomalies); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	msg := bot.sent[0].(tgbotapi.MessageConfig)
	if !strings.Contains(msg.Text, "addon:Drone") || !strings.Contains(msg.Text, "sess-1") {
		t.Fatalf("unexpected text %q", msg.Text)
	}
}
