package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbChooseDifficulty = "choose_difficulty"
	cbBalance          = "check_balance"
	cbClaim            = "claim_airdrop"
	cbLevelPrefix      = "level_" // level_easy / level_normal / level_hard
)

func mainMenu(hasPending bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnChooseLevel, cbChooseDifficulty),
			tgbotapi.NewInlineKeyboardButtonData(btnBalance, cbBalance),
		),
	}
	if hasPending {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnClaim, cbClaim),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func levelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnLevelEasy, cbLevelPrefix+"easy"),
			tgbotapi.NewInlineKeyboardButtonData(btnLevelNormal, cbLevelPrefix+"normal"),
			tgbotapi.NewInlineKeyboardButtonData(btnLevelHard, cbLevelPrefix+"hard"),
		),
	)
}

func claimKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnClaim, cbClaim),
		),
	)
}
