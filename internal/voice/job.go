package voice

import (
	"sync"
	"sync/atomic"
)

// JobState — этап жизненного цикла задания на озвучку.
type JobState int32

const (
	JobPending JobState = iota
	JobSynthesizing
	JobPostProcessing
	JobPlaying
	JobCompleted
	JobFailed
)

func (s JobState) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobSynthesizing:
		return "synthesizing"
	case JobPostProcessing:
		return "post-processing"
	case JobPlaying:
		return "playing"
	case JobCompleted:
		return "completed"
	case JobFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal сообщает, достигло ли состояние конца жизненного цикла.
func (s JobState) Terminal() bool { return s == JobCompleted || s == JobFailed }

// Job — одно сквозное прохождение пайплайна для заданного текста.
// Создаётся в Submit, живёт до Completed/Failed, никуда не сохраняется.
type Job struct {
	Text   string // исходный текст до стилизации
	Config Config // снимок голосовых настроек на момент Submit

	state  atomic.Int32
	method atomic.Value // строка: выбранный метод питч-сдвига, для наблюдаемости

	mu   sync.Mutex
	err  error
	done chan struct{}
}

func newJob(text string, cfg Config) *Job {
	return &Job{Text: text, Config: cfg, done: make(chan struct{})}
}

// State возвращает текущее состояние задания.
func (j *Job) State() JobState { return JobState(j.state.Load()) }

// Method возвращает имя применённого метода питч-сдвига ("sox" или
// "resample"). Пусто, пока постобработка не состоялась.
func (j *Job) Method() string {
	if v, ok := j.method.Load().(string); ok {
		return v
	}
	return ""
}

// Err возвращает ошибку завершившегося задания (nil для Completed
// и для ещё не завершённого).
func (j *Job) Err() error {
	select {
	case <-j.done:
	default:
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Wait блокируется до терминального состояния и возвращает итоговую ошибку.
func (j *Job) Wait() error {
	<-j.done
	return j.Err()
}

// Done возвращает канал, закрываемый при достижении терминального состояния.
func (j *Job) Done() <-chan struct{} { return j.done }

func (j *Job) setState(s JobState) { j.state.Store(int32(s)) }

// finish переводит задание в терминальное состояние ровно один раз.
func (j *Job) finish(err error) {
	j.mu.Lock()
	j.err = err
	j.mu.Unlock()
	if err != nil {
		j.setState(JobFailed)
	} else {
		j.setState(JobCompleted)
	}
	close(j.done)
}
