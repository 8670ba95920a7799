package ingest

import (
	"strings"
	"testing"
)

func TestTokenizerBasic(t *testing.T) {
	stopwords := []string{"yang", "dan", "di", "ini"}
	tokenizer := NewTokenizer(stopwords)

	text := "Pemerintah membantah kabar yang beredar di media"
	tokens := tokenizer.Tokenize(text)

	for _, tok := range tokens {
		if tok == "yang" || tok == "di" {
			t.Errorf("Stopword %q should be filtered", tok)
		}
	}

	expected := []string{"pemerintah", "membantah", "kabar", "beredar", "media"}
	if len(tokens) != len(expected) {
		t.Errorf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
}

func TestTokenizerCaseNormalization(t *testing.T) {
	tokenizer := NewTokenizer([]string{})

	tokens := tokenizer.Tokenize("JAKARTA Hoaks VAKSIN")
	for _, tok := range tokens {
		if tok != strings.ToLower(tok) {
			t.Errorf("Token %q should be lowercased", tok)
		}
	}
}

func TestTokenizerNumericFilter(t *testing.T) {
	tokenizer := NewTokenizer([]string{})

	tokens := tokenizer.Tokenize("tahun 2020 covid-19 100 kasus")

	for _, tok := range tokens {
		if tok == "2020" || tok == "100" {
			t.Errorf("Pure-numeric token %q should be dropped", tok)
		}
	}

	hasMixed := false
	for _, tok := range tokens {
		if tok == "covid-19" {
			hasMixed = true
		}
	}
	if !hasMixed {
		t.Errorf("Mixed token covid-19 should be kept, got %v", tokens)
	}
}

func TestTokenizerShortTokens(t *testing.T) {
	tokenizer := NewTokenizer([]string{})

	tokens := tokenizer.Tokenize("a di x berita")
	for _, tok := range tokens {
		if len(tok) <= 1 {
			t.Errorf("Single-rune token %q should be dropped", tok)
		}
	}
}

func TestTokenizerEmpty(t *testing.T) {
	tokenizer := NewTokenizer([]string{})
	if tokens := tokenizer.Tokenize(""); len(tokens) != 0 {
		t.Errorf("Empty text should yield no tokens, got %v", tokens)
	}
	if tokens := tokenizer.Tokenize("   \n\t  "); len(tokens) != 0 {
		t.Errorf("Whitespace should yield no tokens, got %v", tokens)
	}
}
