package player

import (
	"sync"
	"time"

	"VirtualReminder/internal/voice/dsp"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Устройство вывода общее на процесс и открывается лениво ровно один раз;
// все буферы уже нормализованы к dsp.OutputFormat, поэтому частота фиксирована.
var (
	initOnce sync.Once
	initErr  error
)

func initSpeaker() error {
	initOnce.Do(func() {
		sr := dsp.OutputFormat.SampleRate
		initErr = speaker.Init(sr, sr.N(time.Second/10))
	})
	return initErr
}

// Player воспроизводит готовый буфер, блокируясь до конца проигрывания.
type Player interface {
	Play(buf *beep.Buffer) error
}

// Default реализует Player через системный динамик beep.
type Default struct{ volumeDB float64 }

// New создаёт плеер без изменения громкости (0 dB).
func New() *Default { return &Default{volumeDB: 0} }

// NewWithVolume создаёт плеер с предустановленной громкостью в dB (отрицательные — тише).
func NewWithVolume(db float64) *Default { return &Default{volumeDB: db} }

func (d *Default) Play(buf *beep.Buffer) error {
	if err := initSpeaker(); err != nil {
		return err
	}
	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   d.volumeDB,
		Silent:   false,
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))
	<-done
	return nil
}
