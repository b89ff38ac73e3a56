package gtranslate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const endpoint = "https://translate.google.com/translate_tts"

// Эндпоинт обслуживает только короткие фразы; более длинный текст он
// молча обрезает, поэтому заранее режем его на части не длиннее лимита.
const maxTextLen = 200

// Знаки, на которых предпочтительно резать длинный текст.
const sentenceEnds = ".!?。！？\n"

// Без браузерного User-Agent эндпоинт отвечает 403.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// Client реализует синтез речи через неофициальный TTS-эндпоинт
// Google Translate. Ключей не требует, всегда возвращает mp3.
type Client struct {
	http    *http.Client
	baseURL string
}

func New() *Client {
	return &Client{http: http.DefaultClient, baseURL: endpoint}
}

// Synthesize озвучивает текст и возвращает mp3-данные. Длинный текст
// разбивается на фрагменты по границам предложений, каждый фрагмент
// запрашивается отдельно, mp3-сегменты склеиваются в один поток.
func (c *Client) Synthesize(ctx context.Context, text string, lang string) ([]byte, string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", fmt.Errorf("gtranslate tts: empty text")
	}

	var audio []byte
	for _, chunk := range splitText(text, maxTextLen) {
		part, err := c.fetch(ctx, chunk, lang)
		if err != nil {
			return nil, "", err
		}
		audio = append(audio, part...)
	}
	return audio, "mp3", nil
}

// fetch выполняет GET-запрос к эндпоинту для одного фрагмента.
func (c *Client) fetch(ctx context.Context, text string, lang string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(b) == 0 {
			b = []byte(resp.Status)
		}
		return nil, fmt.Errorf("gtranslate tts error: status=%d, body=%s", resp.StatusCode, bytes.TrimSpace(b))
	}

	return io.ReadAll(resp.Body)
}

// splitText режет текст на фрагменты не длиннее max рун. Резка идёт по
// самой правой границе предложения в пределах лимита, затем по пробелу;
// сплошной текст без границ режется жёстко по рунам.
func splitText(text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= max {
		return []string{text}
	}

	r := []rune(text)
	cut := -1
	for i := 0; i < max; i++ {
		if strings.ContainsRune(sentenceEnds, r[i]) {
			cut = i + 1
		}
	}
	if cut == -1 {
		for i := 0; i < max; i++ {
			if unicode.IsSpace(r[i]) {
				cut = i
			}
		}
	}
	if cut <= 0 {
		cut = max
	}

	head := strings.TrimSpace(string(r[:cut]))
	rest := splitText(string(r[cut:]), max)
	if head == "" {
		return rest
	}
	return append([]string{head}, rest...)
}
