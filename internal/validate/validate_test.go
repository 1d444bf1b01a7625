package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/Memetgms/kitapinceleme/internal/shared"
)

func TestFieldValidators(t *testing.T) {
	t.Run("Email", func(t *testing.T) {
		valid := []string{"a@b.co", "ayse.kaya@example.com", " padded@example.com "}
		for _, value := range valid {
			if err := Email(value); err != nil {
				t.Errorf("expected %q to be valid, got %v", value, err)
			}
		}

		invalid := []string{"", "no-at-sign", "two@@example.com", "user@nodot", "spa ce@example.com"}
		for _, value := range invalid {
			err := Email(value)
			if err == nil {
				t.Errorf("expected %q to be invalid", value)
				continue
			}
			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected ErrValidation for %q, got %v", value, err)
			}
		}
	})

	t.Run("Password", func(t *testing.T) {
		if err := Password("secret"); err != nil {
			t.Errorf("expected 6-char password to pass, got %v", err)
		}
		if err := Password("short"); err == nil {
			t.Error("expected 5-char password to fail")
		}
		if err := Password(strings.Repeat("x", 50)); err != nil {
			t.Errorf("expected 50-char password to pass, got %v", err)
		}
		if err := Password(strings.Repeat("x", 51)); err == nil {
			t.Error("expected 51-char password to fail")
		}
		if err := Password(""); err == nil {
			t.Error("expected empty password to fail")
		}
	})

	t.Run("PasswordMatch", func(t *testing.T) {
		if err := PasswordMatch("secret1", "secret1"); err != nil {
			t.Errorf("expected matching confirmation to pass, got %v", err)
		}
		if err := PasswordMatch("secret1", "secret2"); err == nil {
			t.Error("expected mismatched confirmation to fail")
		}
		if err := PasswordMatch("secret1", ""); err == nil {
			t.Error("expected empty confirmation to fail")
		}
	})

	t.Run("UserName", func(t *testing.T) {
		valid := []string{"ali", "ayse_kaya", "user-42", strings.Repeat("a", 20)}
		for _, value := range valid {
			if err := UserName(value); err != nil {
				t.Errorf("expected %q to be valid, got %v", value, err)
			}
		}

		invalid := []string{"", "ab", strings.Repeat("a", 21), "has space", "dot.ted", "türkçe"}
		for _, value := range invalid {
			if err := UserName(value); err == nil {
				t.Errorf("expected %q to be invalid", value)
			}
		}
	})

	t.Run("FullName", func(t *testing.T) {
		if err := FullName("Sabahattin Ali"); err != nil {
			t.Errorf("expected full name to pass, got %v", err)
		}
		if err := FullName("A"); err == nil {
			t.Error("expected 1-char full name to fail")
		}
		if err := FullName(strings.Repeat("a", 51)); err == nil {
			t.Error("expected 51-char full name to fail")
		}
		// Rune-counted, not byte-counted.
		if err := FullName(strings.Repeat("ü", 50)); err != nil {
			t.Errorf("expected 50-rune name to pass, got %v", err)
		}
	})

	t.Run("Rating", func(t *testing.T) {
		for rating := 1; rating <= 5; rating++ {
			if err := Rating(rating); err != nil {
				t.Errorf("expected rating %d to pass, got %v", rating, err)
			}
		}
		for _, rating := range []int{0, -1, 6} {
			if err := Rating(rating); err == nil {
				t.Errorf("expected rating %d to fail", rating)
			}
		}
	})

	t.Run("Comment", func(t *testing.T) {
		if err := Comment("okunmaya değer bir kitap"); err != nil {
			t.Errorf("expected comment to pass, got %v", err)
		}
		if err := Comment("too short"); err == nil {
			t.Error("expected 9-char comment to fail")
		}
		// Trimmed before measuring: padding cannot rescue a short comment.
		if err := Comment("   short    "); err == nil {
			t.Error("expected padded short comment to fail")
		}
		if err := Comment(strings.Repeat("y", 500)); err != nil {
			t.Errorf("expected 500-char comment to pass, got %v", err)
		}
		if err := Comment(strings.Repeat("y", 501)); err == nil {
			t.Error("expected 501-char comment to fail")
		}
		// Rune-counted: ten multi-byte runes are enough.
		if err := Comment(strings.Repeat("ü", 10)); err != nil {
			t.Errorf("expected 10-rune comment to pass, got %v", err)
		}
	})
}

func TestComposites(t *testing.T) {
	t.Run("Login Collects Every Failure", func(t *testing.T) {
		err := Login("", "")
		if err == nil {
			t.Fatal("expected error")
		}

		var errs FieldErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if len(errs) != 2 {
			t.Errorf("expected 2 field errors, got %d", len(errs))
		}
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Login Passes With Valid Input", func(t *testing.T) {
		if err := Login("ayse@example.com", "secret1"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("Registration Collects Every Failure", func(t *testing.T) {
		err := Registration("", "x", "bad", "short", "other")
		if err == nil {
			t.Fatal("expected error")
		}

		var errs FieldErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if len(errs) != 5 {
			t.Errorf("expected 5 field errors, got %d", len(errs))
		}
	})

	t.Run("Review", func(t *testing.T) {
		if err := Review(5, "gerçekten harika bir kitap"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}

		err := Review(0, "kısa")
		var errs FieldErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if len(errs) != 2 {
			t.Errorf("expected 2 field errors, got %d", len(errs))
		}
	})
}
