package notify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"VirtualReminder/internal/voice/dsp"
	ttsplayer "VirtualReminder/internal/voice/player"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"
)

// SoundNotifier инкапсулирует проигрывание короткого звука перед озвучкой
// напоминания. Файл декодируется один раз при первом использовании.
type SoundNotifier struct {
	logger *zap.SugaredLogger
	path   string
	ply    ttsplayer.Player

	buf *beep.Buffer
}

// NewSoundNotifier создаёт нотификатор. Если путь пустой, пробуем дефолт
// sound/notification.mp3 рядом с бинарём, затем от рабочей директории.
func NewSoundNotifier(logger *zap.SugaredLogger, path string, ply ttsplayer.Player) *SoundNotifier {
	if strings.TrimSpace(path) == "" {
		def := filepath.Join("sound", "notification.mp3")
		// Путь по умолчанию: рядом с бинарём
		if exe, err := os.Executable(); err == nil {
			cand := filepath.Join(filepath.Dir(exe), def)
			if _, statErr := os.Stat(cand); statErr == nil {
				path = cand
			}
		}
		if path == "" {
			path = filepath.FromSlash(def)
		}
	}
	return &SoundNotifier{logger: logger, path: path, ply: ply}
}

// Play проигрывает звук уведомления. Ошибки логируются и возвращаются,
// чтобы вызывающий мог принять решение (например, проигнорировать).
func (n *SoundNotifier) Play(ctx context.Context) error {
	// Проверяем отмену контекста до начала
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	default:
	}

	if n.buf == nil {
		buf, err := n.load()
		if err != nil {
			if n.logger != nil {
				n.logger.Warnw("Не удалось загрузить звук уведомления", "path", n.path, "error", err)
			}
			return err
		}
		n.buf = buf
	}

	if err := n.ply.Play(n.buf); err != nil {
		if n.logger != nil {
			n.logger.Warnw("Не удалось воспроизвести звук уведомления", "path", n.path, "error", err)
		}
		return err
	}
	return nil
}

// load декодирует файл по расширению и нормализует его к формату плеера.
func (n *SoundNotifier) load() (*beep.Buffer, error) {
	f, err := os.Open(n.path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(n.path), ".")) {
	case "wav":
		streamer, format, err = wav.Decode(f)
	case "mp3", "":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, errors.New("notify: unsupported chime format; use mp3 or wav")
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != dsp.OutputFormat.SampleRate {
		s = beep.Resample(4, format.SampleRate, dsp.OutputFormat.SampleRate, s)
	}
	buf := beep.NewBuffer(dsp.OutputFormat)
	buf.Append(s)
	return buf, nil
}
