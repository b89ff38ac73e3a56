package voice

import (
	"strings"

	"VirtualReminder/internal/config"
	"VirtualReminder/internal/voice/dsp"
	"VirtualReminder/internal/voice/notify"
	"VirtualReminder/internal/voice/player"
	"VirtualReminder/internal/voice/tts/google"
	"VirtualReminder/internal/voice/tts/gtranslate"
	"VirtualReminder/internal/voice/tts/openai"

	"go.uber.org/zap"
)

// NewFromConfig собирает пайплайн по конфигурации приложения: выбирает
// бэкенд синтеза, пробует метод питч-сдвига, настраивает громкость плеера
// и опциональный звук-уведомление.
func NewFromConfig(cfg *config.Config, logger *zap.SugaredLogger) *Pipeline {
	p := player.NewWithVolume(cfg.PlaybackVolumeDb)

	// Конкретный клиент синтеза
	var synth Synthesizer
	service := strings.ToLower(strings.TrimSpace(cfg.TTSService))
	switch service {
	case "google", "gcloud":
		synth = google.New(cfg.GoogleTTS, logger)
	case "openai":
		synth = openai.New(cfg.OpenAITTS, logger)
	default: // gtranslate — бесключевой вариант
		synth = gtranslate.New()
		if service == "" {
			service = "gtranslate"
		}
	}
	logger.Infow("TTS selected", "service", service)

	var opts []PipelineOption
	if strings.TrimSpace(cfg.ChimeSoundPath) != "" {
		opts = append(opts, WithChime(notify.NewSoundNotifier(logger, cfg.ChimeSoundPath, p)))
	}

	return NewPipeline(synth, dsp.Probe(logger), p, logger, opts...)
}
