// Package settings читает и пишет JSON-файл настроек пользователя:
// путь к картинке персонажа, список напоминаний и голосовые настройки.
package settings

import (
	"encoding/json"
	"os"

	"VirtualReminder/internal/reminder"
	"VirtualReminder/internal/voice"
)

// ReminderSetting — запись напоминания в файле, время в формате "HH:MM".
type ReminderSetting struct {
	Text   string `json:"text"`
	Time   string `json:"time"`
	Active bool   `json:"active"`
}

// VoiceSettings — голосовые настройки в файле.
type VoiceSettings struct {
	Language string  `json:"language"`
	Speed    float64 `json:"speed"`
	Pitch    float64 `json:"pitch"`
	AddWords bool    `json:"add_words"`
}

// Settings — корневой документ файла настроек.
type Settings struct {
	ImagePath string            `json:"image_path"`
	Reminders []ReminderSetting `json:"reminders"`
	Voice     VoiceSettings     `json:"voice_settings"`
}

// Defaults — настройки нового пользователя: японский голос, слегка ускоренный
// и повышенный, со стилизацией текста.
func Defaults() *Settings {
	return &Settings{
		Reminders: []ReminderSetting{},
		Voice: VoiceSettings{
			Language: "ja",
			Speed:    1.2,
			Pitch:    1.3,
			AddWords: true,
		},
	}
}

// Load читает настройки из файла. Отсутствующий или повреждённый файл —
// не ошибка: возвращаются дефолты, файл перезапишется при первом сохранении.
func Load(path string) *Settings {
	s := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(b, s); err != nil {
		return Defaults()
	}
	if s.Reminders == nil {
		s.Reminders = []ReminderSetting{}
	}
	return s
}

// Save записывает настройки в файл.
func (s *Settings) Save(path string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReminderList конвертирует записи файла в доменные напоминания.
// Записи с неразбираемым временем пропускаются, чтобы одна битая строка
// не блокировала остальные.
func (s *Settings) ReminderList() []reminder.Reminder {
	out := make([]reminder.Reminder, 0, len(s.Reminders))
	for _, r := range s.Reminders {
		at, err := reminder.ParseTimeOfDay(r.Time)
		if err != nil || r.Text == "" {
			continue
		}
		out = append(out, reminder.Reminder{Text: r.Text, Time: at, Active: r.Active})
	}
	return out
}

// SetReminders заменяет записи файла снимком доменного списка.
func (s *Settings) SetReminders(list []reminder.Reminder) {
	out := make([]ReminderSetting, 0, len(list))
	for _, r := range list {
		out = append(out, ReminderSetting{Text: r.Text, Time: r.Time.String(), Active: r.Active})
	}
	s.Reminders = out
}

// VoiceConfig возвращает голосовые настройки в виде конфига пайплайна.
func (s *Settings) VoiceConfig() voice.Config {
	return voice.Config{
		Language: s.Voice.Language,
		Speed:    s.Voice.Speed,
		Pitch:    s.Voice.Pitch,
		Stylize:  s.Voice.AddWords,
	}
}
