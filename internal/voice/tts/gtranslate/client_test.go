package gtranslate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New()
	c.baseURL = srv.URL
	return c, srv
}

func TestSynthesizeShortText(t *testing.T) {
	var requests []string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query().Get("q"))
		fmt.Fprint(w, "mp3-bytes")
	})
	defer srv.Close()

	audio, format, err := c.Synthesize(context.Background(), "Time to rest, desu!", "en")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if format != "mp3" {
		t.Errorf("format = %q, want mp3", format)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if len(requests) != 1 || requests[0] != "Time to rest, desu!" {
		t.Errorf("requests = %v, want one request with the full text", requests)
	}
}

func TestSynthesizeSplitsLongText(t *testing.T) {
	var requests []string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		requests = append(requests, q)
		fmt.Fprintf(w, "[%s]", q)
	})
	defer srv.Close()

	sentence := "Dinner is on the stove and it is getting cold, please eat soon. "
	text := strings.Repeat(sentence, 6) // ~380 рун, больше лимита одного запроса

	audio, _, err := c.Synthesize(context.Background(), text, "en")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(requests) < 2 {
		t.Fatalf("expected the text to be split into multiple requests, got %d", len(requests))
	}
	for _, q := range requests {
		if n := utf8.RuneCountInString(q); n > maxTextLen {
			t.Errorf("request of %d runes exceeds the %d limit: %q", n, maxTextLen, q)
		}
		if !strings.HasSuffix(q, ".") {
			t.Errorf("chunk does not end on a sentence boundary: %q", q)
		}
	}
	// Склейка сегментов в порядке запросов
	want := "[" + strings.Join(requests, "][") + "]"
	if string(audio) != want {
		t.Errorf("audio = %q, want concatenated segments %q", audio, want)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	c := New()
	if _, _, err := c.Synthesize(context.Background(), "   ", "en"); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestSynthesizeServerError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, _, err := c.Synthesize(context.Background(), "hello", "en")
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "status=429") {
		t.Errorf("error does not carry the status: %v", err)
	}
}

func TestSplitText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want []string
	}{
		{name: "short passthrough", in: "hello world", max: 20, want: []string{"hello world"}},
		{name: "sentence boundary", in: "One two. Three four five.", max: 17, want: []string{"One two.", "Three four five."}},
		{name: "space fallback", in: "alpha beta gamma", max: 11, want: []string{"alpha beta", "gamma"}},
		{name: "hard split", in: "abcdefghij", max: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "blank", in: "   ", max: 10, want: nil},
	}
	for _, c := range cases {
		got := splitText(c.in, c.max)
		if len(got) != len(c.want) {
			t.Errorf("%s: splitText = %q, want %q", c.name, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%s: chunk %d = %q, want %q", c.name, i, got[i], c.want[i])
			}
		}
	}
}
