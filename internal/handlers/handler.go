package handlers

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-quiz-bot/internal/engine"
)

const inboxSize = 32

// Handler wires Telegram updates to the interaction engine. Updates are
// dispatched to one worker goroutine per user, so one user's events are
// handled in arrival order while users never block each other.
type Handler struct {
	Bot    *tgbotapi.BotAPI
	Engine *engine.Engine

	mu      sync.Mutex
	inboxes map[int64]chan tgbotapi.Update
}

func New(bot *tgbotapi.BotAPI, eng *engine.Engine) *Handler {
	return &Handler{
		Bot:     bot,
		Engine:  eng,
		inboxes: make(map[int64]chan tgbotapi.Update),
	}
}

// Dispatch routes an update to its user's worker. A full inbox drops the
// update with a warning rather than stalling other users.
func (h *Handler) Dispatch(upd tgbotapi.Update) {
	userID := updateUserID(upd)
	if userID == 0 {
		return
	}

	h.mu.Lock()
	ch, ok := h.inboxes[userID]
	if !ok {
		ch = make(chan tgbotapi.Update, inboxSize)
		h.inboxes[userID] = ch
		go h.worker(ch)
	}
	h.mu.Unlock()

	select {
	case ch <- upd:
	default:
		log.Printf("inbox full for user %d, dropping update", userID)
	}
}

func (h *Handler) worker(ch <-chan tgbotapi.Update) {
	for upd := range ch {
		h.handle(upd)
	}
}

func (h *Handler) handle(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		if upd.Message.IsCommand() {
			h.HandleCommand(upd.Message)
			return
		}
		h.HandleText(upd.Message)
	case upd.CallbackQuery != nil:
		h.HandleCallback(upd.CallbackQuery)
	}
}

func updateUserID(upd tgbotapi.Update) int64 {
	if upd.Message != nil && upd.Message.From != nil {
		return upd.Message.From.ID
	}
	if upd.CallbackQuery != nil && upd.CallbackQuery.From != nil {
		return upd.CallbackQuery.From.ID
	}
	return 0
}

// send delivers a plain text reply. Delivery failures are logged, never fatal.
func (h *Handler) send(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}
