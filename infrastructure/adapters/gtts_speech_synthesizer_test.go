package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"beanflow-video-generator/application/ports/outbound"
	"beanflow-video-generator/mock"
)

func TestSplitSpeechText(t *testing.T) {
	chunks := splitSpeechText("Good morning. I'm here to introduce BeanFlow!  Is it ready?", 100)
	expected := []string{"Good morning.", "I'm here to introduce BeanFlow!", "Is it ready?"}
	if len(chunks) != len(expected) {
		t.Fatalf("expected %d chunks, got %d: %q", len(expected), len(chunks), chunks)
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, expected[i], chunks[i])
		}
	}

	long := strings.Repeat("coffee ", 40)
	for _, c := range splitSpeechText(long, 100) {
		if utf8.RuneCountInString(c) > 100 {
			t.Errorf("chunk exceeds 100 runes: %d", utf8.RuneCountInString(c))
		}
	}
	if got := strings.Join(splitSpeechText(long, 100), " "); got != strings.TrimSpace(long) {
		t.Error("chunks must rejoin into the original words")
	}

	word := strings.Repeat("a", 250)
	cut := splitSpeechText(word, 100)
	if len(cut) != 3 || len(cut[2]) != 50 {
		t.Errorf("expected an overlong word to be cut into 100/100/50, got %d chunks", len(cut))
	}

	if len(splitSpeechText("   ", 100)) != 0 {
		t.Error("expected no chunks for blank text")
	}
}

func TestGTTSSpeechSynthesizer_Synthesize(t *testing.T) {
	var (
		mu      sync.Mutex
		indexes []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("tl") != "en" || q.Get("client") != "tw-ob" || q.Get("ttsspeed") != "1" || q.Get("total") != "2" {
			http.Error(w, "bad params", http.StatusBadRequest)
			return
		}
		mu.Lock()
		indexes = append(indexes, q.Get("idx"))
		mu.Unlock()
		_, _ = w.Write([]byte("[" + q.Get("q") + "]"))
	}))
	defer srv.Close()

	logger := mock.NewLogger()
	synthesizer := NewGTTSSpeechSynthesizer(NewContentFetcher(logger, srv.Client()), srv.URL, logger)

	audio, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:     "Good morning. Welcome to BeanFlow.",
		Language: "en",
	})
	if err != nil {
		t.Fatal("Failed to synthesize speech:", err)
	}
	defer audio.Close()

	payload, err := io.ReadAll(audio)
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != "[Good morning.][Welcome to BeanFlow.]" {
		t.Errorf("unexpected audio payload %q", payload)
	}
	if strings.Join(indexes, ",") != "0,1" {
		t.Errorf("expected chunks in order, got %v", indexes)
	}
}

func TestGTTSSpeechSynthesizer_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	logger := mock.NewLogger()
	synthesizer := NewGTTSSpeechSynthesizer(NewContentFetcher(logger, srv.Client()), srv.URL, logger)
	if _, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{Text: "hi", Language: "en"}); err == nil {
		t.Fatal("expected provider failure to be returned")
	}
}
