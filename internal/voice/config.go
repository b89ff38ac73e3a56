package voice

// Языки озвучки, которые понимает каждый из бэкендов синтеза.
var SupportedLanguages = []string{"ja", "en", "ko", "zh-CN"}

// IsSupportedLanguage проверяет код языка по фиксированному набору.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Config — голосовые настройки одного задания на озвучку. Снимок делается
// в момент Submit: правки настроек пользователем не влияют на уже идущее задание.
type Config struct {
	Language string  // код языка из SupportedLanguages
	Speed    float64 // множитель темпа, 1.0 — без изменений
	Pitch    float64 // множитель высоты тона, 1.0 — без изменений
	Stylize  bool    // добавлять ли стилистическое окончание к тексту
}

// sanitized возвращает копию с безопасными множителями: неположительные
// значения заменяются на 1.0, остальные передаются как есть (слайдеры UI
// и так держат диапазон 0.8–1.5, а sox и ресемплинг переносят более широкий).
func (c Config) sanitized() Config {
	if c.Speed <= 0 {
		c.Speed = 1.0
	}
	if c.Pitch <= 0 {
		c.Pitch = 1.0
	}
	return c
}
