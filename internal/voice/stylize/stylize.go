// Package stylize добавляет к тексту стилистическое окончание, чтобы
// синтезированная речь звучала в духе аниме-персонажа.
package stylize

import (
	"math/rand"
	"strings"
)

// markers — подстроки, при наличии которых текст уже «стилизован»
// и трогать его не нужно. Сравнение без учёта регистра.
var markers = []string{"desu", "nya", "chan", "kun", "senpai"}

// flourishes — окончания, одно из которых добавляется к тексту.
var flourishes = []string{"desu", "ne", "yo"}

// Apply возвращает текст с добавленным окончанием, либо без изменений,
// если стилизация выключена или текст уже содержит маркер стиля.
// Выбор окончания случайный.
func Apply(text string, enabled bool) string {
	if !enabled {
		return text
	}
	lower := strings.ToLower(text)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return text
		}
	}
	return text + " " + flourishes[rand.Intn(len(flourishes))]
}
