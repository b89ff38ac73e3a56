// Package dsp — постобработка синтезированной речи: изменение темпа и
// высоты тона, нормализация к фиксированному формату воспроизведения.
package dsp

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"
)

// OutputFormat — фиксированный формат результата: 44100 Гц, стерео, 16 бит.
var OutputFormat = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// Качество ресемплера beep (1–64); 4 — разумный компромисс скорости и качества.
const resampleQuality = 4

// pitchShifter — метод сдвига высоты тона, выбираемый при старте.
type pitchShifter interface {
	name() string
	// shift потребляет входной поток и возвращает поток со сдвинутым тоном.
	// Формат результата может отличаться от входного (см. resampleShifter).
	shift(ctx context.Context, s beep.Streamer, f beep.Format, factor float64) (beep.Streamer, beep.Format, error)
}

// Processor применяет трансформации к сырому аудио от синтезатора.
//
// Темп: ресемплинг-растяжение (beep.ResampleRatio) — длительность делится
// на множитель, высота тона при этом смещается как побочный эффект метода.
//
// Тон: истинный питч-сдвиг через внешний sox (длительность сохраняется);
// без sox — деградированный режим с переразметкой частоты кадров, который
// заодно меняет темп (см. resampleShifter).
type Processor struct {
	shifter pitchShifter
	logger  *zap.SugaredLogger
}

// Probe выбирает метод питч-сдвига по доступным возможностям окружения
// и возвращает готовый процессор. Выбор логируется один раз при старте.
func Probe(logger *zap.SugaredLogger) *Processor {
	if soxAvailable() {
		logger.Infow("Pitch shift method selected", "method", methodSox)
		return &Processor{shifter: &soxShifter{}, logger: logger}
	}
	logger.Warnw("Sox not found, pitch shift will fall back to resampling (tempo changes as a side effect)",
		"method", methodResample)
	return &Processor{shifter: &resampleShifter{}, logger: logger}
}

// newProcessor собирает процессор с заданным методом (для тестов).
func newProcessor(sh pitchShifter, logger *zap.SugaredLogger) *Processor {
	return &Processor{shifter: sh, logger: logger}
}

// Method возвращает имя выбранного метода питч-сдвига.
func (p *Processor) Method() string { return p.shifter.name() }

// Process декодирует сырое аудио, применяет темп и тон и собирает результат
// в буфер фиксированного формата.
func (p *Processor) Process(ctx context.Context, data []byte, format string, speed, pitch float64) (*beep.Buffer, error) {
	streamer, f, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer

	if speed != 1.0 {
		// Растяжение по времени: ratio = speed, длительность := длительность/speed
		s = beep.ResampleRatio(resampleQuality, speed, s)
	}

	if pitch != 1.0 {
		shifted, sf, serr := p.shifter.shift(ctx, s, f, pitch)
		if serr != nil {
			return nil, serr
		}
		if c, ok := shifted.(io.Closer); ok {
			defer c.Close()
		}
		if p.shifter.name() == methodResample {
			p.logger.Warnw("Pitch shifted in degraded mode, duration changed as a side effect", "pitch", pitch)
		}
		s, f = shifted, sf
	}

	if f.SampleRate != OutputFormat.SampleRate {
		s = beep.Resample(resampleQuality, f.SampleRate, OutputFormat.SampleRate, s)
	}

	buf := beep.NewBuffer(OutputFormat)
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, errors.New("dsp: empty audio after processing")
	}
	return buf, nil
}

// decode разбирает контейнер по имени формата, как это делает плеер.
func decode(data []byte, format string) (beep.StreamSeekCloser, beep.Format, error) {
	r := io.NopCloser(bytes.NewReader(data))
	switch format {
	case "wav", "WAV":
		return wav.Decode(r)
	case "mp3", "MP3":
		return mp3.Decode(r)
	default:
		return nil, beep.Format{}, errors.New("dsp: unsupported format; use mp3 or wav")
	}
}
