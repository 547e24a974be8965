package telegram

import (
	"CampusFind-Backend/internal/utils"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type (
	TelegramService interface {
		SendMessage(chatID string, text string) bool
	}

	telegramService struct {
		bot *tgbotapi.BotAPI
	}
)

// NewTelegramService builds the outbound chat channel. A missing or invalid
// bot token yields a no-op sender rather than an error so the rest of the
// app keeps working without the integration.
func NewTelegramService() TelegramService {
	token := utils.GetConfig("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, telegram notifications disabled")
		return &telegramService{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("telegram bot init failed, notifications disabled: %v", err)
		return &telegramService{}
	}
	return &telegramService{bot: bot}
}

func (s *telegramService) SendMessage(chatID string, text string) bool {
	if s.bot == nil || chatID == "" {
		return false
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		log.Printf("invalid telegram chat id %q: %v", chatID, err)
		return false
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("telegram send to %s failed: %v", chatID, err)
		return false
	}
	return true
}
