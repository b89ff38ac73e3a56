package voice

import (
	"errors"
	"fmt"
)

// ErrBusy возвращается из Submit, пока предыдущее задание не завершилось.
// Политика «не больше одной озвучки за раз»: повторная заявка отклоняется,
// а не ставится в очередь.
var ErrBusy = errors.New("voice: announcement in progress")

// SynthesisError — отказ внешнего сервиса синтеза речи (сеть, неподдерживаемый язык).
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return fmt.Sprintf("voice: synthesis: %v", e.Err) }
func (e *SynthesisError) Unwrap() error { return e.Err }

// AudioProcessingError — сбой декодирования/трансформации аудио.
type AudioProcessingError struct {
	Err error
}

func (e *AudioProcessingError) Error() string { return fmt.Sprintf("voice: audio processing: %v", e.Err) }
func (e *AudioProcessingError) Unwrap() error { return e.Err }

// PlaybackError — недоступность аудиоустройства или сбой воспроизведения.
type PlaybackError struct {
	Err error
}

func (e *PlaybackError) Error() string { return fmt.Sprintf("voice: playback: %v", e.Err) }
func (e *PlaybackError) Unwrap() error { return e.Err }
