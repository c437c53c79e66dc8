package handlers

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.HandleStart(msg)
	case "cancel":
		h.HandleCancel(msg)
	case "balance":
		h.replyBalance(msg.From.ID, msg.Chat.ID)
	}
}

// HandleStart registers the user and shows the main menu. The claim button
// appears only while an airdrop is pending.
func (h *Handler) HandleStart(msg *tgbotapi.Message) {
	u, err := h.Engine.Start(context.Background(), msg.From.ID)
	if err != nil {
		log.Printf("start for %d: %v", msg.From.ID, err)
		h.send(msg.Chat.ID, textStorageOops)
		return
	}
	h.sendWithKeyboard(msg.Chat.ID, textGreeting, mainMenu(u.HasPendingAirdrop()))
}

// HandleCancel discards the active task without scoring.
func (h *Handler) HandleCancel(msg *tgbotapi.Message) {
	if h.Engine.Cancel(msg.From.ID) {
		h.sendWithKeyboard(msg.Chat.ID, textCancelled, mainMenu(false))
		return
	}
	h.send(msg.Chat.ID, textNothingToCancel)
}

func (h *Handler) replyBalance(userID, chatID int64) {
	balance, err := h.Engine.Balance(context.Background(), userID)
	if err != nil {
		log.Printf("balance for %d: %v", userID, err)
		h.send(chatID, textStorageOops)
		return
	}
	h.send(chatID, fmt.Sprintf(textBalance, balance))
}
