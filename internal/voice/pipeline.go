package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"VirtualReminder/internal/voice/stylize"
	"VirtualReminder/internal/voice/tts"

	"github.com/faiface/beep"
	"go.uber.org/zap"
)

// Synthesizer — общий контракт бэкендов синтеза, см. tts.Synthesizer.
type Synthesizer = tts.Synthesizer

// Processor применяет темп/питч-трансформацию и нормализует аудио
// к фиксированному формату воспроизведения.
type Processor interface {
	Process(ctx context.Context, data []byte, format string, speed, pitch float64) (*beep.Buffer, error)
	// Method возвращает имя выбранного метода питч-сдвига.
	Method() string
}

// Player воспроизводит готовый буфер, блокируясь до конца проигрывания.
type Player interface {
	Play(buf *beep.Buffer) error
}

// Chime — опциональный короткий звук перед началом озвучки.
type Chime interface {
	Play(ctx context.Context) error
}

// PipelineOption настраивает пайплайн.
type PipelineOption func(*Pipeline)

// WithChime включает звук-уведомление перед синтезом.
func WithChime(c Chime) PipelineOption {
	return func(p *Pipeline) { p.chime = c }
}

// Pipeline проводит текст через стилизацию, синтез, постобработку и
// воспроизведение. Одновременно живёт не больше одного задания: пока
// предыдущее не в терминальном состоянии, Submit возвращает ErrBusy.
type Pipeline struct {
	synth  Synthesizer
	proc   Processor
	player Player
	chime  Chime
	logger *zap.SugaredLogger

	busy atomic.Bool

	mu  sync.Mutex
	cur *Job
}

func NewPipeline(synth Synthesizer, proc Processor, player Player, logger *zap.SugaredLogger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{synth: synth, proc: proc, player: player, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Busy сообщает, занято ли единственное место в пайплайне.
func (p *Pipeline) Busy() bool { return p.busy.Load() }

// Current возвращает последнее принятое задание (возможно, уже завершённое).
func (p *Pipeline) Current() *Job {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur
}

// Submit принимает текст в работу и сразу возвращает хэндл задания.
// Весь пайплайн исполняется в отдельной горутине; ErrBusy — если
// предыдущее задание ещё не завершилось.
func (p *Pipeline) Submit(ctx context.Context, text string, cfg Config) (*Job, error) {
	if text == "" {
		return nil, errors.New("voice: empty text")
	}
	if !IsSupportedLanguage(cfg.Language) {
		return nil, &SynthesisError{Err: fmt.Errorf("unsupported language %q", cfg.Language)}
	}
	if !p.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	job := newJob(text, cfg.sanitized())
	p.mu.Lock()
	p.cur = job
	p.mu.Unlock()

	go p.run(ctx, job)
	return job, nil
}

// run исполняет все стадии одного задания. Любая ошибка или паника стадии
// гасит только это задание; пайплайн остаётся пригодным для следующих.
func (p *Pipeline) run(ctx context.Context, job *Job) {
	var err error
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("voice: panic in pipeline: %v", rec)
		}
		// Сначала освобождаем место, затем публикуем терминальное состояние:
		// кто дождался Wait, тому Submit уже не ответит ErrBusy
		p.busy.Store(false)
		job.finish(err)
		if err != nil {
			p.logger.Errorw("Announcement failed", "state", job.State().String(), "error", err)
		}
	}()

	start := time.Now()
	cfg := job.Config

	text := stylize.Apply(job.Text, cfg.Stylize)
	if text != job.Text {
		p.logger.Infow("Text stylized", "text", text)
	}

	if p.chime != nil {
		// Звук-уведомление не обязателен: его сбой не валит задание
		if cerr := p.chime.Play(ctx); cerr != nil {
			p.logger.Warnw("Chime failed", "error", cerr)
		}
	}

	job.setState(JobSynthesizing)
	raw, format, serr := p.synth.Synthesize(ctx, text, cfg.Language)
	if serr != nil {
		err = &SynthesisError{Err: serr}
		return
	}
	p.logger.Infow("Speech synthesized", "format", format, "bytes", len(raw))

	job.setState(JobPostProcessing)
	buf, perr := p.proc.Process(ctx, raw, format, cfg.Speed, cfg.Pitch)
	if perr != nil {
		err = &AudioProcessingError{Err: perr}
		return
	}
	job.method.Store(p.proc.Method())

	job.setState(JobPlaying)
	if plerr := p.player.Play(buf); plerr != nil {
		err = &PlaybackError{Err: plerr}
		return
	}

	p.logger.Infow("Announcement done", "duration", time.Since(start).String(), "method", job.Method())
}
