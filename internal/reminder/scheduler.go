package reminder

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Option настраивает планировщик.
type Option func(*Scheduler)

// WithInterval задаёт периодичность опроса. Интервал должен быть короче
// минуты, иначе возможен пропуск минутной границы.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock подменяет источник текущего времени (для детерминированных тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// Scheduler владеет списком напоминаний и опрашивает часы в фоновой горутине.
// Список мутируют двое: внешний код добавляет напоминания, сам планировщик
// гасит флаг Active при срабатывании; оба доступа идут под одним мьютексом.
type Scheduler struct {
	logger   *zap.SugaredLogger
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	reminders []Reminder
	onFired   func(text string)

	runMu   sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New создаёт планировщик с начальным списком напоминаний (из файла настроек).
func New(logger *zap.SugaredLogger, initial []Reminder, opts ...Option) *Scheduler {
	s := &Scheduler{
		logger:    logger,
		interval:  30 * time.Second,
		now:       time.Now,
		reminders: append([]Reminder(nil), initial...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnFired регистрирует обработчик срабатывания. Вызывается до Start.
// Обработчик исполняется в горутине планировщика и не должен блокироваться
// на долгой работе — озвучка уходит в собственный воркер пайплайна.
func (s *Scheduler) OnFired(fn func(text string)) {
	s.mu.Lock()
	s.onFired = fn
	s.mu.Unlock()
}

// Add добавляет активное напоминание в конец списка.
func (s *Scheduler) Add(text string, at TimeOfDay) error {
	if text == "" {
		return errEmptyText
	}
	s.mu.Lock()
	s.reminders = append(s.reminders, Reminder{Text: text, Time: at, Active: true})
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Infow("Reminder added", "time", at.String(), "text", text)
	}
	return nil
}

// Snapshot возвращает копию списка (для отображения и персистенции).
func (s *Scheduler) Snapshot() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Start запускает цикл опроса в фоновой горутине и сразу возвращается.
// Первая проверка выполняется немедленно: напоминание на текущую минуту
// срабатывает без ожидания первого интервала.
func (s *Scheduler) Start() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running {
		if s.logger != nil {
			s.logger.Warnw("Scheduler already running")
		}
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
	if s.logger != nil {
		s.logger.Infow("Scheduler started", "interval", s.interval.String())
	}
}

// Stop просит цикл завершиться на ближайшей точке пробуждения и ждёт выхода.
func (s *Scheduler) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	s.running = false
	if s.logger != nil {
		s.logger.Infow("Scheduler stopped")
	}
}

func (s *Scheduler) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	s.poll()
	for {
		t := time.NewTimer(s.interval)
		select {
		case <-stop:
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			s.poll()
		}
	}
}

// poll — один тик: сверяем активные напоминания с текущей минутой.
// Совпавшие гасим под мьютексом и эмитим в порядке списка уже без него,
// чтобы обработчик мог сам обращаться к планировщику.
// Любая неожиданность внутри тика логируется и не роняет цикл: следующий
// тик пойдёт своим чередом.
func (s *Scheduler) poll() {
	defer func() {
		if rec := recover(); rec != nil && s.logger != nil {
			s.logger.Errorw("Scheduler fault during poll", "panic", rec)
		}
	}()

	cur := At(s.now())

	s.mu.Lock()
	var fired []string
	for i := range s.reminders {
		r := &s.reminders[i]
		if r.Active && r.Time == cur {
			r.Active = false
			fired = append(fired, r.Text)
		}
	}
	fn := s.onFired
	s.mu.Unlock()

	for _, text := range fired {
		s.emit(fn, cur, text)
	}
}

// emit вызывает обработчик одного напоминания. Паника обработчика или
// обработки гасится здесь: сбой одного напоминания не должен останавливать
// цикл и не должен мешать остальным.
func (s *Scheduler) emit(fn func(string), at TimeOfDay, text string) {
	defer func() {
		if rec := recover(); rec != nil && s.logger != nil {
			s.logger.Errorw("Scheduler fault while firing reminder", "time", at.String(), "text", text, "panic", rec)
		}
	}()

	if s.logger != nil {
		s.logger.Infow("Reminder fired", "time", at.String(), "text", text)
	}
	if fn != nil {
		fn(text)
	}
}
