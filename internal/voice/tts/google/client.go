package google

import (
	"context"
	"fmt"
	"time"

	"VirtualReminder/internal/config"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
)

// Соответствие коротких кодов языков приложения кодам BCP-47 сервиса.
var languageCodes = map[string]string{
	"ja":    "ja-JP",
	"en":    "en-US",
	"ko":    "ko-KR",
	"zh-CN": "cmn-CN",
}

// Client реализует синтез речи через Google Cloud Text-to-Speech.
// Темп и высота тона здесь не задаются: ими занимается постобработка,
// общая для всех бэкендов.
type Client struct {
	cfg    config.GoogleTTSConfig
	logger *zap.SugaredLogger
}

func New(cfg config.GoogleTTSConfig, logger *zap.SugaredLogger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// Synthesize выполняет запрос к Google TTS и возвращает mp3-данные.
func (c *Client) Synthesize(ctx context.Context, text string, lang string) ([]byte, string, error) {
	code, ok := languageCodes[lang]
	if !ok {
		return nil, "", fmt.Errorf("google tts: unsupported language %q", lang)
	}

	// Создаём клиента SDK
	ttsClient, err := gctts.NewClient(ctx)
	if err != nil {
		return nil, "", err
	}
	defer ttsClient.Close()

	input := &ttspb.SynthesisInput{InputSource: &ttspb.SynthesisInput_Text{Text: text}}

	voice := &ttspb.VoiceSelectionParams{LanguageCode: code}
	// Явное имя голоса имеет смысл только если оно совпадает с языком запроса
	if c.cfg.Voice != "" {
		voice.Name = c.cfg.Voice
	}

	// Только MP3
	audio := &ttspb.AudioConfig{AudioEncoding: ttspb.AudioEncoding_MP3}
	if ep := c.cfg.EffectsProfileID; ep != "" {
		audio.EffectsProfileId = []string{ep}
	}

	req := &ttspb.SynthesizeSpeechRequest{Input: input, Voice: voice, AudioConfig: audio}
	started := time.Now()
	resp, err := ttsClient.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if c.logger != nil {
		c.logger.Infow("Google TTS synthesize completed", "took", time.Since(started).String())
	}

	return resp.GetAudioContent(), "mp3", nil
}
