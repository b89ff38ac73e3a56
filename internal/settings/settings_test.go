package settings

import (
	"os"
	"path/filepath"
	"testing"

	"VirtualReminder/internal/reminder"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.json"))
	if s.Voice.Language != "ja" || s.Voice.Speed != 1.2 || s.Voice.Pitch != 1.3 || !s.Voice.AddWords {
		t.Errorf("defaults = %+v", s.Voice)
	}
	if len(s.Reminders) != 0 {
		t.Errorf("defaults have %d reminders", len(s.Reminders))
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load(path)
	if s.Voice.Language != "ja" {
		t.Errorf("corrupt file: voice = %+v, want defaults", s.Voice)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := Defaults()
	s.ImagePath = "characters/miku.gif"
	s.Voice = VoiceSettings{Language: "en", Speed: 0.9, Pitch: 1.1, AddWords: false}
	s.Reminders = []ReminderSetting{
		{Text: "Meeting", Time: "14:30", Active: true},
		{Text: "Tea", Time: "16:00", Active: false},
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(path)
	if got.ImagePath != s.ImagePath {
		t.Errorf("image_path = %q, want %q", got.ImagePath, s.ImagePath)
	}
	if got.Voice != s.Voice {
		t.Errorf("voice_settings = %+v, want %+v", got.Voice, s.Voice)
	}
	if len(got.Reminders) != 2 || got.Reminders[0] != s.Reminders[0] || got.Reminders[1] != s.Reminders[1] {
		t.Errorf("reminders = %+v", got.Reminders)
	}
}

func TestReminderListSkipsBadEntries(t *testing.T) {
	s := &Settings{Reminders: []ReminderSetting{
		{Text: "ok", Time: "08:00", Active: true},
		{Text: "bad time", Time: "25:99", Active: true},
		{Text: "", Time: "09:00", Active: true},
	}}
	list := s.ReminderList()
	if len(list) != 1 || list[0].Text != "ok" {
		t.Errorf("ReminderList = %+v, want single %q entry", list, "ok")
	}
}

func TestSetRemindersFormatsTime(t *testing.T) {
	s := Defaults()
	s.SetReminders([]reminder.Reminder{
		{Text: "Meeting", Time: reminder.TimeOfDay{Hour: 7, Minute: 5}, Active: false},
	})
	if len(s.Reminders) != 1 {
		t.Fatalf("reminders = %+v", s.Reminders)
	}
	if got := s.Reminders[0]; got.Time != "07:05" || got.Active || got.Text != "Meeting" {
		t.Errorf("entry = %+v", got)
	}
}

func TestVoiceConfigMapping(t *testing.T) {
	s := Defaults()
	cfg := s.VoiceConfig()
	if cfg.Language != "ja" || cfg.Speed != 1.2 || cfg.Pitch != 1.3 || !cfg.Stylize {
		t.Errorf("VoiceConfig = %+v", cfg)
	}
}
