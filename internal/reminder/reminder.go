package reminder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay — время срабатывания с минутным разрешением, без даты.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay разбирает строку вида "HH:MM" (как в файле настроек).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("time of day: expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day: %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day: %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day: %q out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// At усекает момент времени до минутного разрешения по локальным часам.
func At(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Reminder — напоминание: текст и время суток. После срабатывания Active
// становится false и обратно не переключается; запись остаётся в списке.
type Reminder struct {
	Text   string
	Time   TimeOfDay
	Active bool
}

var errEmptyText = errors.New("reminder: empty text")
