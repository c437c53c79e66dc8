package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-quiz-bot/internal/engine"
	"telegram-quiz-bot/internal/models"
)

func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	// Answer first so the client drops its 'loading…' spinner even if the
	// action below fails.
	if _, err := h.Bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("answer callback for %d: %v", cq.From.ID, err)
	}
	if cq.Message == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	switch data := cq.Data; {
	case data == cbChooseDifficulty:
		h.sendWithKeyboard(chatID, textChooseLevel, levelKeyboard())

	case data == cbBalance:
		h.replyBalance(userID, chatID)

	case data == cbClaim:
		h.claimAirdrop(userID, chatID)

	case strings.HasPrefix(data, cbLevelPrefix):
		h.chooseLevel(userID, chatID, models.Level(strings.TrimPrefix(data, cbLevelPrefix)))
	}
}

func (h *Handler) chooseLevel(userID, chatID int64, level models.Level) {
	if !level.Valid() {
		return
	}
	task, err := h.Engine.ChooseLevel(context.Background(), userID, level)
	switch {
	case errors.Is(err, engine.ErrNoTasks):
		h.send(chatID, textNoTasks)
	case err != nil:
		log.Printf("choose level for %d: %v", userID, err)
		h.send(chatID, textStorageOops)
	default:
		h.send(chatID, fmt.Sprintf(textTask, task.Question))
	}
}

func (h *Handler) claimAirdrop(userID, chatID int64) {
	task, err := h.Engine.ClaimAirdrop(context.Background(), userID)
	switch {
	case errors.Is(err, engine.ErrNothingToClaim):
		h.send(chatID, textNothingToClaim)
	case errors.Is(err, engine.ErrAirdropExpired):
		h.send(chatID, textAirdropExpired)
	case err != nil:
		log.Printf("claim airdrop for %d: %v", userID, err)
		h.send(chatID, textStorageOops)
	default:
		h.send(chatID, fmt.Sprintf(textAirdropTask, task.Question))
	}
}
