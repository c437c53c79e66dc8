package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-quiz-bot/internal/models"
)

// NotifyAirdrop implements scheduler.Notifier: it offers the pending airdrop
// with a claim button. Unlike regular replies the error is returned, so the
// scheduler can log which users were unreachable.
func (h *Handler) NotifyAirdrop(userID int64, task models.Task) error {
	msg := tgbotapi.NewMessage(userID, fmt.Sprintf(textAirdropOffer, levelTitle(task.Level)))
	msg.ReplyMarkup = claimKeyboard()
	_, err := h.Bot.Send(msg)
	return err
}
