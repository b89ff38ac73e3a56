package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"VirtualReminder/internal/config"
	"VirtualReminder/internal/reminder"
	"VirtualReminder/internal/settings"
	"VirtualReminder/internal/voice"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	sugar.Infow("Starting reminder daemon",
		"DebugMode", cfg.DebugMode,
		"SettingsPath", cfg.SettingsPath,
	)

	st := settings.Load(cfg.SettingsPath)
	pipe := voice.NewFromConfig(cfg, sugar)

	ctx := context.Background()

	sched := reminder.New(sugar, st.ReminderList(),
		reminder.WithInterval(time.Duration(cfg.PollIntervalSeconds)*time.Second))

	// persist сохраняет снимок списка в файл настроек после каждой мутации
	persist := func() {
		st.SetReminders(sched.Snapshot())
		if err := st.Save(cfg.SettingsPath); err != nil {
			sugar.Errorw("Failed to save settings", "path", cfg.SettingsPath, "error", err)
		}
	}

	sched.OnFired(func(text string) {
		// Озвучка уходит в воркер пайплайна, тик планировщика не ждёт её
		if _, err := pipe.Submit(ctx, text, st.VoiceConfig()); err != nil {
			if errors.Is(err, voice.ErrBusy) {
				sugar.Infow("Announcement skipped, pipeline busy", "text", text)
			} else {
				sugar.Errorw("Failed to submit announcement", "text", text, "error", err)
			}
		}
		persist()
	})

	sched.Start()

	// Graceful shutdown по Ctrl+C / SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	sugar.Infow("Shutting down")
	sched.Stop()

	// Идущую озвучку не обрываем: дожидаемся её (ограниченно), чтобы не
	// рвать состояние аудиоустройства посреди проигрывания
	if job := pipe.Current(); job != nil {
		select {
		case <-job.Done():
		case <-time.After(30 * time.Second):
			sugar.Warnw("Announcement still running at shutdown, giving up waiting")
		}
	}

	persist()
	sugar.Infow("Stopped")
}
