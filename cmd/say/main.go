package main

import (
	"context"
	"flag"
	"strings"

	"VirtualReminder/internal/config"
	"VirtualReminder/internal/settings"
	"VirtualReminder/internal/voice"

	"go.uber.org/zap"
)

// Фраза для проверки голоса, когда текст не передан.
const testPhrase = "Hello! I'm your anime reminder assistant, desu!"

// Утилита проверки голоса: прогоняет фразу через весь пайплайн
// (стилизация, синтез, постобработка, воспроизведение) без планировщика.
func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		text = testPhrase
	}

	st := settings.Load(cfg.SettingsPath)
	pipe := voice.NewFromConfig(cfg, sugar)

	job, err := pipe.Submit(context.Background(), text, st.VoiceConfig())
	if err != nil {
		sugar.Fatalw("Failed to submit announcement", "error", err)
	}
	if err := job.Wait(); err != nil {
		sugar.Fatalw("Announcement failed", "state", job.State().String(), "error", err)
	}
	sugar.Infow("Announcement done", "state", job.State().String(), "method", job.Method())
}
