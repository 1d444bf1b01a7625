package views

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleBooks() []models.Book {
	return []models.Book{
		{ID: 1, Title: "Tutunamayanlar", Author: "Oğuz Atay", Price: 85, PublishedDate: "1972-01-01", Description: "modern roman"},
		{ID: 2, Title: "Kürk Mantolu Madonna", Author: "Sabahattin Ali", Price: 42.5, PublishedDate: "1943-01-01", Description: "aşk romanı"},
		{ID: 3, Title: "İnce Memed", Author: "Yaşar Kemal", Price: 60, PublishedDate: "1955-01-01", Description: "köy romanı"},
	}
}

func TestParseSortKey(t *testing.T) {
	for _, value := range []string{"", "title", "Author", " PRICE ", "date"} {
		if _, err := ParseSortKey(value); err != nil {
			t.Errorf("expected %q to parse, got %v", value, err)
		}
	}

	_, err := ParseSortKey("rating")
	if !errors.Is(err, shared.ErrInvalidFlag) {
		t.Errorf("expected ErrInvalidFlag, got %v", err)
	}
}

func TestApplyView(t *testing.T) {
	t.Run("Never Mutates The Input", func(t *testing.T) {
		books := sampleBooks()
		snapshot := make([]models.Book, len(books))
		copy(snapshot, books)

		ApplyView(books, View{SearchTerm: "roman", Sort: SortPrice})

		if !reflect.DeepEqual(books, snapshot) {
			t.Error("expected input slice to be unchanged")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		books := sampleBooks()
		view := View{SearchTerm: "a", Sort: SortTitle}

		first := ApplyView(books, view)
		second := ApplyView(books, view)

		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical output on identical input")
		}
	})

	t.Run("Search Is Case-Insensitive Across Fields", func(t *testing.T) {
		books := sampleBooks()

		byTitle := ApplyView(books, View{SearchTerm: "madonna"})
		if len(byTitle) != 1 || byTitle[0].ID != 2 {
			t.Errorf("expected only book 2 by title, got %v", byTitle)
		}

		byAuthor := ApplyView(books, View{SearchTerm: "YAŞAR"})
		if len(byAuthor) != 1 || byAuthor[0].ID != 3 {
			t.Errorf("expected only book 3 by author, got %v", byAuthor)
		}

		byDescription := ApplyView(books, View{SearchTerm: "aşk"})
		if len(byDescription) != 1 || byDescription[0].ID != 2 {
			t.Errorf("expected only book 2 by description, got %v", byDescription)
		}

		none := ApplyView(books, View{SearchTerm: "yok böyle kitap"})
		if len(none) != 0 {
			t.Errorf("expected no matches, got %v", none)
		}
	})

	t.Run("Sort Orders", func(t *testing.T) {
		books := sampleBooks()

		ids := func(list []models.Book) []int {
			out := make([]int, len(list))
			for i, b := range list {
				out[i] = b.ID
			}
			return out
		}

		if got := ids(ApplyView(books, View{Sort: SortPrice})); !reflect.DeepEqual(got, []int{2, 3, 1}) {
			t.Errorf("expected price ascending [2 3 1], got %v", got)
		}
		if got := ids(ApplyView(books, View{Sort: SortDate})); !reflect.DeepEqual(got, []int{1, 3, 2}) {
			t.Errorf("expected date descending [1 3 2], got %v", got)
		}
		if got := ids(ApplyView(books, View{Sort: SortTitle})); !reflect.DeepEqual(got, []int{3, 2, 1}) {
			t.Errorf("expected title order [3 2 1], got %v", got)
		}
		if got := ids(ApplyView(books, View{Sort: SortNone})); !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("expected input order to be preserved, got %v", got)
		}
	})
}

func TestCatalog(t *testing.T) {
	t.Run("Load Replaces Collection And Refreshes Cache", func(t *testing.T) {
		books := sampleBooks()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(books)
		}))
		defer server.Close()

		db := setupTestDB(t)
		defer db.Close()
		cache := repositories.NewBookCacheRepository(db)

		catalog := NewCatalog(services.NewClient(server.URL, nil), cache, nil)
		catalog.Books = []models.Book{{ID: 99, Title: "stale"}}

		if err := catalog.LoadAll(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(catalog.Books) != 3 {
			t.Fatalf("expected stale collection to be replaced, got %d books", len(catalog.Books))
		}

		count, err := cache.Count()
		if err != nil {
			t.Fatalf("failed to count cache: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 cached books, got %d", count)
		}
	})

	t.Run("GenreName", func(t *testing.T) {
		catalog := NewCatalog(services.NewClient("", nil), nil, nil)
		catalog.Genres = []models.Genre{{ID: 1, Name: "Roman"}}

		if got := catalog.GenreName(1); got != "Roman" {
			t.Errorf("expected 'Roman', got %s", got)
		}
		if got := catalog.GenreName(9); got != "N/A" {
			t.Errorf("expected 'N/A' for unknown genre, got %s", got)
		}
	})
}

func TestHero(t *testing.T) {
	t.Run("Both Present", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/MostPopular/most-popular-book":
				json.NewEncoder(w).Encode(models.Book{ID: 1, Title: "Tutunamayanlar"})
			case "/MostPopular/most-favorite-book":
				json.NewEncoder(w).Encode(models.Book{ID: 2, Title: "Kürk Mantolu Madonna"})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		catalog := NewCatalog(services.NewClient(server.URL, nil), nil, nil)
		hero, err := catalog.Hero(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hero.Popular == nil || hero.Popular.ID != 1 {
			t.Errorf("expected popular book 1, got %v", hero.Popular)
		}
		if hero.Favorite == nil || hero.Favorite.ID != 2 {
			t.Errorf("expected favorite book 2, got %v", hero.Favorite)
		}
	})

	t.Run("404 Means No Book Yet", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		catalog := NewCatalog(services.NewClient(server.URL, nil), nil, nil)
		hero, err := catalog.Hero(context.Background())
		if err != nil {
			t.Fatalf("expected no error for empty-catalog 404, got %v", err)
		}
		if hero.Popular != nil || hero.Favorite != nil {
			t.Error("expected both hero slots to be empty")
		}
	})

	t.Run("One Failure Keeps The Other Result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/MostPopular/most-popular-book" {
				json.NewEncoder(w).Encode(models.Book{ID: 1, Title: "Tutunamayanlar"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		catalog := NewCatalog(services.NewClient(server.URL, nil), nil, nil)
		hero, err := catalog.Hero(context.Background())
		if !errors.Is(err, shared.ErrFetch) {
			t.Errorf("expected ErrFetch from the failing side, got %v", err)
		}
		if hero.Popular == nil || hero.Popular.ID != 1 {
			t.Error("expected the successful side to survive the other side's failure")
		}
	})
}
