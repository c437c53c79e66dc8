package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-quiz-bot/internal/engine"
)

// HandleText scores free text against the user's active task. Text arriving
// while the user is idle is ignored, like any other unsolicited message.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	res, err := h.Engine.SubmitAnswer(context.Background(), userID, msg.Text)
	if errors.Is(err, engine.ErrNoActiveTask) {
		return
	}
	if err != nil {
		log.Printf("submit answer for %d: %v", userID, err)
		h.send(chatID, textStorageOops)
		return
	}

	switch res.Outcome {
	case engine.OutcomeCorrect:
		h.sendWithKeyboard(chatID, fmt.Sprintf(textCorrect, res.Reward), mainMenu(false))
	case engine.OutcomeRetry:
		h.send(chatID, fmt.Sprintf(textRetry, res.AttemptsLeft))
	case engine.OutcomeWrong:
		h.sendWithKeyboard(chatID, textWrong, mainMenu(false))
	}
}
