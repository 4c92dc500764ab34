package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)

	// NotifyOperator sends plain text to the configured operator chat.
	NotifyOperator(text string)
	// NotifyChannel posts MarkdownV2 text to the configured channel.
	NotifyChannel(markdown string)
}

// Noop stands in when no bot token is configured.
type Noop struct{}

var _ Client = Noop{}

func (Noop) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return make(chan tgbotapi.Update)
}

func (Noop) StopReceivingUpdates() {}

func (Noop) SendMessage(int64, string) (int, error) { return 0, nil }

func (Noop) NotifyOperator(string) {}

func (Noop) NotifyChannel(string) {}
