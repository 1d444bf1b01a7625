package views

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/shared"
)

func TestProfile(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		t.Run("Requires Login", func(t *testing.T) {
			api := services.NewClient("", nil)
			sess := newSessionStore(t, api, "", "", "")
			profile := NewProfile(api, sess, nil, nil)

			err := profile.Load(context.Background())
			if !errors.Is(err, shared.ErrNotLoggedIn) {
				t.Errorf("expected ErrNotLoggedIn, got %v", err)
			}
		})

		t.Run("Fetches By The Token's User Id", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/userinfo/42" {
					t.Errorf("expected path '/userinfo/42', got %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(models.Profile{
					UserName: "ayse",
					Email:    "ayse@example.com",
					Reviews:  []models.ProfileReview{{ID: 1, Title: "Tutunamayanlar", Rating: 5, Comment: "unutulmaz bir roman"}},
				})
			}))
			defer server.Close()

			api := services.NewClient(server.URL, nil)
			sess := newSessionStore(t, api, "42", "ayse", "User")
			profile := NewProfile(api, sess, nil, nil)

			if err := profile.Load(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if profile.FellBack {
				t.Error("expected no fallback for a live profile")
			}
			if profile.Data.Email != "ayse@example.com" {
				t.Errorf("unexpected email %s", profile.Data.Email)
			}
			if len(profile.Data.Reviews) != 1 {
				t.Errorf("expected 1 review, got %d", len(profile.Data.Reviews))
			}
		})

		t.Run("Missing Record Falls Back To Session Claims", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			api := services.NewClient(server.URL, nil)
			sess := newSessionStore(t, api, "42", "ayse", "User")
			profile := NewProfile(api, sess, nil, nil)

			if err := profile.Load(context.Background()); err != nil {
				t.Fatalf("expected fallback, not error, got %v", err)
			}
			if !profile.FellBack {
				t.Error("expected FellBack to be set")
			}
			if profile.Data.UserName != "ayse" {
				t.Errorf("expected user name from claims, got %s", profile.Data.UserName)
			}
			if len(profile.Data.Reviews) != 0 {
				t.Error("expected an empty review list in fallback")
			}
		})
	})

	t.Run("Favorites", func(t *testing.T) {
		t.Run("Joins Against The Catalog", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/favorites":
					json.NewEncoder(w).Encode([]models.Favorite{
						{ID: 10, BookID: 1, UserID: 42},
						{ID: 11, BookID: 77, UserID: 42}, // no matching book
					})
				case "/books":
					json.NewEncoder(w).Encode(sampleBooks())
				default:
					t.Errorf("unexpected path %s", r.URL.Path)
				}
			}))
			defer server.Close()

			api := services.NewClient(server.URL, nil)
			sess := newSessionStore(t, api, "42", "ayse", "User")
			profile := NewProfile(api, sess, nil, nil)

			favorites, err := profile.Favorites(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(favorites) != 1 {
				t.Fatalf("expected unresolvable favorite to be dropped, got %d", len(favorites))
			}
			if favorites[0].FavoriteID != 10 || favorites[0].Book.ID != 1 {
				t.Errorf("unexpected favorite %+v", favorites[0])
			}
		})

		t.Run("Falls Back To The Local Cache", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/favorites":
					json.NewEncoder(w).Encode([]models.Favorite{{ID: 10, BookID: 2, UserID: 42}})
				case "/books":
					w.WriteHeader(http.StatusInternalServerError)
				default:
					t.Errorf("unexpected path %s", r.URL.Path)
				}
			}))
			defer server.Close()

			db := setupTestDB(t)
			defer db.Close()
			cache := repositories.NewBookCacheRepository(db)
			if err := cache.ReplaceAll(sampleBooks()); err != nil {
				t.Fatalf("failed to seed cache: %v", err)
			}

			api := services.NewClient(server.URL, nil)
			sess := newSessionStore(t, api, "42", "ayse", "User")
			profile := NewProfile(api, sess, cache, nil)

			favorites, err := profile.Favorites(context.Background())
			if err != nil {
				t.Fatalf("expected cache fallback, got %v", err)
			}
			if len(favorites) != 1 || favorites[0].Book.Title != "Kürk Mantolu Madonna" {
				t.Errorf("expected favorite resolved from cache, got %+v", favorites)
			}
		})

		t.Run("Catalog Failure Without Cache Surfaces", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/favorites" {
					json.NewEncoder(w).Encode([]models.Favorite{{ID: 10, BookID: 2, UserID: 42}})
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			api := services.NewClient(server.URL, nil)
			sess := newSessionStore(t, api, "42", "ayse", "User")
			profile := NewProfile(api, sess, nil, nil)

			_, err := profile.Favorites(context.Background())
			if !errors.Is(err, shared.ErrFetch) {
				t.Errorf("expected ErrFetch, got %v", err)
			}
		})

		t.Run("Removal Shrinks The List", func(t *testing.T) {
			remaining := []models.Favorite{
				{ID: 10, BookID: 1, UserID: 42},
				{ID: 11, BookID: 2, UserID: 42},
			}
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch {
				case r.Method == http.MethodDelete && r.URL.Path == "/favorites/10":
					remaining = remaining[1:]
					w.WriteHeader(http.StatusOK)
				case r.URL.Path == "/favorites":
					json.NewEncoder(w).Encode(remaining)
				case r.URL.Path == "/books":
					json.NewEncoder(w).Encode(sampleBooks())
				default:
					t.Errorf("unexpected path %s", r.URL.Path)
				}
			}))
			defer server.Close()

			api := services.NewClient(server.URL, nil)
			sess := newSessionStore(t, api, "42", "ayse", "User")
			profile := NewProfile(api, sess, nil, nil)

			before, err := profile.Favorites(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(before) != 2 {
				t.Fatalf("expected 2 favorites, got %d", len(before))
			}

			if err := profile.RemoveFavorite(context.Background(), 10); err != nil {
				t.Fatalf("failed to remove favorite: %v", err)
			}

			after, err := profile.Favorites(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(after) != 1 || after[0].FavoriteID != 11 {
				t.Errorf("expected favorite 10 gone, got %+v", after)
			}
		})
	})
}
