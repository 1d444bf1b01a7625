package shared

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{42.5, "₺42.50"},
		{85, "₺85.00"},
		{0, "₺0.00"},
		{129.99, "₺129.99"},
	}

	for _, c := range cases {
		if got := FormatPrice(c.price); got != c.want {
			t.Errorf("FormatPrice(%v) = %s, want %s", c.price, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Run("Accepts The Known Layouts", func(t *testing.T) {
		inputs := []string{
			"1972-01-01T00:00:00Z",
			"1972-01-01T00:00:00",
			"1972-01-01",
		}

		for _, input := range inputs {
			parsed, err := ParseDate(input)
			if err != nil {
				t.Errorf("ParseDate(%q) failed: %v", input, err)
				continue
			}
			if parsed.Year() != 1972 || parsed.Month() != time.January {
				t.Errorf("ParseDate(%q) = %v", input, parsed)
			}
		}
	})

	t.Run("Rejects Garbage", func(t *testing.T) {
		_, err := ParseDate("dün")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("1943-01-01T00:00:00"); got != "1 Jan 1943" {
		t.Errorf("expected 1 Jan 1943, got %s", got)
	}

	// Unparseable input passes through untouched.
	if got := FormatDate("bilinmiyor"); got != "bilinmiyor" {
		t.Errorf("expected pass-through, got %s", got)
	}

	t.Run("Configured Layout", func(t *testing.T) {
		defer SetDateFormat("2 Jan 2006")

		SetDateFormat("02.01.2006")
		if got := FormatDate("1943-01-01"); got != "01.01.1943" {
			t.Errorf("expected 01.01.1943, got %s", got)
		}

		// Empty layout keeps the current one.
		SetDateFormat("")
		if got := FormatDate("1943-01-01"); got != "01.01.1943" {
			t.Errorf("expected layout to stick, got %s", got)
		}
	})
}

func TestTruncateText(t *testing.T) {
	t.Run("Short Text Is Untouched", func(t *testing.T) {
		if got := TruncateText("kısa", 10); got != "kısa" {
			t.Errorf("expected kısa, got %s", got)
		}
	})

	t.Run("Long Text Gets An Ellipsis", func(t *testing.T) {
		got := TruncateText("Tutunamayanlar modern Türk edebiyatının temel taşlarından biridir", 20)
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected ellipsis, got %s", got)
		}
		if len([]rune(got)) > 23 {
			t.Errorf("truncated text too long: %s", got)
		}
	})

	t.Run("Counts Runes Not Bytes", func(t *testing.T) {
		text := strings.Repeat("ü", 10)
		if got := TruncateText(text, 10); got != text {
			t.Errorf("expected 10-rune text untouched, got %s", got)
		}
	})
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("expected non-empty ids")
	}
	if first == second {
		t.Error("expected distinct ids")
	}
}

func TestMarshalJSON(t *testing.T) {
	v := map[string]string{"title": "İnce Memed"}

	compact, err := MarshalJSON(v, false)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact output should be single-line")
	}

	pretty, err := MarshalJSON(v, true)
	if err != nil {
		t.Fatalf("failed to marshal pretty: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("pretty output should be indented")
	}
}
