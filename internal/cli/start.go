package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"telegram-quiz-bot/internal/catalog"
	"telegram-quiz-bot/internal/config"
	"telegram-quiz-bot/internal/engine"
	"telegram-quiz-bot/internal/handlers"
	"telegram-quiz-bot/internal/scheduler"
	"telegram-quiz-bot/internal/session"
	"telegram-quiz-bot/internal/storage"
)

func newStartCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context(), *configPath)
		},
	}
}

func runBot(ctx context.Context, configPath string) error {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	token, err := config.BotToken()
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	cat, err := catalog.Load(cfg.TasksFile)
	if err != nil {
		return err
	}

	eng := engine.New(session.NewStore(), db, cat, cfg.MaxAttempts)
	h := handlers.New(bot, eng)

	// The deployed schedule lives in the database; config only seeds it once.
	if err := db.SeedSchedule(ctx, cfg.AirdropTimes); err != nil {
		return err
	}
	times, err := db.ScheduleTimes(ctx)
	if err != nil {
		return err
	}

	sched, err := scheduler.New(db, cat, h, times)
	if err != nil {
		return err
	}
	gs, err := sched.Start()
	if err != nil {
		return err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	log.Printf("bot started as @%s, airdrops at %v", bot.Self.UserName, times)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case upd := <-updates:
			h.Dispatch(upd)
		case <-stop:
			log.Println("shutting down")
			bot.StopReceivingUpdates()
			return gs.Shutdown()
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			return gs.Shutdown()
		}
	}
}
