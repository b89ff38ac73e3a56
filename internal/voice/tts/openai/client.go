package openai

import (
	"context"
	"io"
	"time"

	"VirtualReminder/internal/config"

	oai "github.com/openai/openai-go/v3"
	"go.uber.org/zap"
)

// Client реализует синтез речи через OpenAI /v1/audio/speech.
// Голоса OpenAI мультиязычные, язык определяется самим текстом,
// поэтому параметр lang здесь не используется.
type Client struct {
	client *oai.Client
	cfg    config.OpenAITTSConfig
	logger *zap.SugaredLogger
}

// New создаёт клиента. SDK читает OPENAI_API_KEY из окружения.
func New(cfg config.OpenAITTSConfig, logger *zap.SugaredLogger) *Client {
	c := oai.NewClient()
	return &Client{client: &c, cfg: cfg, logger: logger}
}

// Synthesize выполняет запрос к OpenAI и возвращает mp3-данные.
func (c *Client) Synthesize(ctx context.Context, text string, _ string) ([]byte, string, error) {
	started := time.Now()
	resp, err := c.client.Audio.Speech.New(ctx, oai.AudioSpeechNewParams{
		Model:          oai.SpeechModel(c.cfg.Model),
		Voice:          oai.AudioSpeechNewParamsVoice(c.cfg.Voice),
		Input:          text,
		ResponseFormat: oai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if c.logger != nil {
		c.logger.Infow("OpenAI TTS synthesize completed", "took", time.Since(started).String(), "bytes", len(audio))
	}
	return audio, "mp3", nil
}
