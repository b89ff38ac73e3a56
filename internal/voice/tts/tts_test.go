package tts_test

import (
	"VirtualReminder/internal/voice/tts"
	"VirtualReminder/internal/voice/tts/google"
	"VirtualReminder/internal/voice/tts/gtranslate"
	"VirtualReminder/internal/voice/tts/openai"
)

// Каждый бэкенд обязан удовлетворять общему контракту синтеза.
var (
	_ tts.Synthesizer = (*gtranslate.Client)(nil)
	_ tts.Synthesizer = (*google.Client)(nil)
	_ tts.Synthesizer = (*openai.Client)(nil)
)
