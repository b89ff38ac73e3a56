package tts

import "context"

// Synthesizer абстракция TTS. Метод возвращает сырые аудиоданные и имя
// контейнера ("mp3" или "wav") — воспроизведением занимается пайплайн
// после постобработки.
// lang — код языка из фиксированного набора (ja, en, ko, zh-CN).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang string) (audio []byte, format string, err error)
}
