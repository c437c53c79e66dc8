package handlers

import "telegram-quiz-bot/internal/models"

const (
	textGreeting    = "👋 Привет! Здесь ты можешь зарабатывать крипту, выполняя задания!"
	textChooseLevel = "Выберите уровень сложности:"
	textNoTasks     = "❗ Нет заданий для этого уровня."
	textTask        = "🔍 Задание: %s\n✏️ Напишите ответ в чат."
	textBalance     = "💰 Ваш баланс: %d Обезьянка-койнов"
	textCorrect     = "✅ Верно! Вы получили %d Обезьянка-койнов."
	textWrong       = "❌ Неправильно. Попробуйте снова или выберите новое задание."
	textRetry       = "❌ Неправильно. Осталось попыток: %d."
	textStorageOops = "❗ Ошибка. Попробуйте снова."

	textAirdropOffer   = "🪂 Аирдроп! Вас ждёт задание уровня «%s». Успейте забрать его сегодня!"
	textAirdropTask    = "🪂 Задание аирдропа: %s\n✏️ Напишите ответ в чат."
	textNothingToClaim = "🪂 Сейчас нет аирдропа для получения."
	textAirdropExpired = "🪂 Аирдроп устарел, попробуйте в следующий раз."

	textCancelled       = "Задание отменено."
	textNothingToCancel = "Сейчас нет активного задания."
)

const (
	btnChooseLevel = "Выбор сложности"
	btnBalance     = "Баланс"
	btnClaim       = "🪂 Забрать аирдроп"

	btnLevelEasy   = "Лёгкий"
	btnLevelNormal = "Нормальный"
	btnLevelHard   = "Сложный"
)

func levelTitle(l models.Level) string {
	switch l {
	case models.LevelEasy:
		return btnLevelEasy
	case models.LevelNormal:
		return btnLevelNormal
	case models.LevelHard:
		return btnLevelHard
	}
	return string(l)
}
