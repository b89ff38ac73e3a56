package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode    bool   `env:"DEBUG_MODE"`    // Режим дебага
	SettingsPath string `env:"SETTINGS_PATH"` // Путь к JSON-файлу настроек пользователя (список напоминаний, голос)

	// Настройки фонового опроса напоминаний
	PollIntervalSeconds int `env:"POLL_INTERVAL_SECONDS"` // Периодичность проверки напоминаний, в секундах

	// Общий переключатель сервиса TTS
	TTSService string `env:"TTS_SERVICE"` // gtranslate|google|openai, по умолчанию gtranslate
	GoogleTTS  GoogleTTSConfig
	OpenAITTS  OpenAITTSConfig

	// Воспроизведение
	PlaybackVolumeDb float64 `env:"PLAYBACK_VOLUME_DB"` // Громкость воспроизведения в dB (отрицательные — тише)
	ChimeSoundPath   string  `env:"CHIME_SOUND_PATH"`   // Путь к короткому звуку перед озвучкой; пусто — без звука
}

// GoogleTTSConfig конфигурация для синтеза речи через Google Cloud Text-to-Speech.
type GoogleTTSConfig struct {
	// Путь к файлу ключа сервисного аккаунта. Фактически читается из ENV GOOGLE_APPLICATION_CREDENTIALS.
	// Здесь храним дефолт (service-account.json в корне проекта) для удобства.
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	Voice           string `env:"GOOGLE_TTS_VOICE"` // Имя голоса; пусто — сервис выберет по языку
	// Эффект профиля устройства воспроизведения (оптимизация эквализации), напр. large-home-entertainment-class-device
	EffectsProfileID string `env:"GOOGLE_TTS_EFFECTS_PROFILE_ID"`
}

// OpenAITTSConfig конфигурация для синтеза речи через OpenAI (/v1/audio/speech).
// Ключ берётся из ENV OPENAI_API_KEY самим SDK.
type OpenAITTSConfig struct {
	Model string `env:"OPENAI_TTS_MODEL"` // Модель синтеза, по умолчанию tts-1
	Voice string `env:"OPENAI_TTS_VOICE"` // Голос, по умолчанию alloy
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:    false,
		SettingsPath: "reminder_settings.json",
		// 30 секунд достаточно, чтобы ни одна минутная граница не была пропущена дважды подряд
		PollIntervalSeconds: 30,
		// По умолчанию используем бесключевой сервис
		TTSService: "gtranslate",
		GoogleTTS: GoogleTTSConfig{
			CredentialsPath:  "service-account.json",
			Voice:            "", // выбирается сервисом по языку
			EffectsProfileID: "large-home-entertainment-class-device",
		},
		OpenAITTS: OpenAITTSConfig{
			Model: "tts-1",
			Voice: "alloy",
		},
		PlaybackVolumeDb: 0,
		ChimeSoundPath:   "",
	}
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() *Config {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	_ = env.Parse(cfg)

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага для отображения доп. инфы")
	flag.StringVar(&cfg.SettingsPath, "settings-path", cfg.SettingsPath, "путь к JSON-файлу настроек пользователя")
	flag.IntVar(&cfg.PollIntervalSeconds, "poll-interval-seconds", cfg.PollIntervalSeconds, "периодичность проверки напоминаний в секундах")
	flag.StringVar(&cfg.TTSService, "tts-service", cfg.TTSService, "выбор сервиса TTS: gtranslate|google|openai")
	// Параметры Google TTS
	flag.StringVar(&cfg.GoogleTTS.CredentialsPath, "google-tts-credentials", cfg.GoogleTTS.CredentialsPath, "путь к service-account.json (также читается из ENV GOOGLE_APPLICATION_CREDENTIALS)")
	flag.StringVar(&cfg.GoogleTTS.Voice, "google-tts-voice", cfg.GoogleTTS.Voice, "имя голоса, напр. ja-JP-Standard-A; пусто = авто по языку")
	flag.StringVar(&cfg.GoogleTTS.EffectsProfileID, "google-tts-effects-profile-id", cfg.GoogleTTS.EffectsProfileID, "EffectsProfileId, напр. large-home-entertainment-class-device")
	// Параметры OpenAI TTS
	flag.StringVar(&cfg.OpenAITTS.Model, "openai-tts-model", cfg.OpenAITTS.Model, "модель синтеза OpenAI (tts-1|tts-1-hd|gpt-4o-mini-tts)")
	flag.StringVar(&cfg.OpenAITTS.Voice, "openai-tts-voice", cfg.OpenAITTS.Voice, "голос OpenAI (alloy, echo, nova и т.д.)")
	// Воспроизведение
	flag.Float64Var(&cfg.PlaybackVolumeDb, "playback-volume-db", cfg.PlaybackVolumeDb, "громкость воспроизведения в dB (0 — без изменений)")
	flag.StringVar(&cfg.ChimeSoundPath, "chime-sound-path", cfg.ChimeSoundPath, "путь к звуковому файлу перед озвучкой (mp3 или wav); пусто — выключено")
	flag.Parse()

	// Валидация и подготовка окружения для Google TTS.
	// Если выбран сервис google, убеждаемся, что задан путь к cred-файлу
	// и он существует. Если ENV пуст, но в конфиге указан путь — устанавливаем ENV.
	if strings.EqualFold(cfg.TTSService, "google") {
		cred := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if cred == "" {
			if cp := strings.TrimSpace(cfg.GoogleTTS.CredentialsPath); cp != "" {
				_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cp)
				cred = cp
			}
		}
		if cred == "" {
			panic(fmt.Errorf("google tts: переменная окружения GOOGLE_APPLICATION_CREDENTIALS не задана; укажите ENV или флаг -google-tts-credentials"))
		}
		if _, err := os.Stat(cred); err != nil {
			panic(fmt.Errorf("google tts: файл ключа не найден: %s", cred))
		}
	}

	return cfg
}
