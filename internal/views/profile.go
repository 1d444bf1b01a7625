package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/session"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/charmbracelet/log"
)

// Profile shows the signed-in user's account details, reviews and favorites.
type Profile struct {
	api     *services.Client
	session *session.Store
	cache   *repositories.BookCacheRepository
	logger  *log.Logger

	Data *models.Profile

	// FellBack is true when Data was synthesized from the session claims
	// because no backend profile record exists yet.
	FellBack bool
}

// NewProfile creates a profile view-model. cache may be nil.
func NewProfile(api *services.Client, sess *session.Store, cache *repositories.BookCacheRepository, logger *log.Logger) *Profile {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Profile{api: api, session: sess, cache: cache, logger: logger}
}

// Load fetches the profile for the current session. A fresh account with no
// profile record yet is not an error: the view degrades to the identity
// carried in the session claims, with an empty review list.
func (p *Profile) Load(ctx context.Context) error {
	sess := p.session.Current()
	if sess.Anonymous() {
		return fmt.Errorf("%w: log in to view your profile", shared.ErrNotLoggedIn)
	}

	profile, err := p.api.Profile(ctx, sess.UserID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			p.logger.Warn("profile fetch failed, falling back to session claims", "err", err)
		}
		p.Data = &models.Profile{UserName: sess.UserName}
		p.FellBack = true
		return nil
	}

	p.Data = profile
	p.FellBack = false
	return nil
}

// DeleteReview removes one of the user's reviews and reloads the profile so
// the list reflects the deletion.
func (p *Profile) DeleteReview(ctx context.Context, reviewID int) error {
	if err := p.api.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	return p.Load(ctx)
}

// Favorites joins the user's favorite records against the catalog. When the
// catalog fetch fails, the locally cached copy stands in; favorites whose
// book cannot be resolved either way are dropped silently.
func (p *Profile) Favorites(ctx context.Context) ([]models.FavoriteBook, error) {
	if p.session.Current().Anonymous() {
		return nil, fmt.Errorf("%w: log in to view favorites", shared.ErrNotLoggedIn)
	}

	favorites, err := p.api.Favorites(ctx)
	if err != nil {
		return nil, err
	}

	books, err := p.api.Books(ctx)
	if err != nil {
		if p.cache == nil {
			return nil, err
		}
		p.logger.Warn("catalog fetch failed, resolving favorites from cache", "err", err)
		books, err = p.cache.List()
		if err != nil {
			return nil, err
		}
	}

	byID := make(map[int]models.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	resolved := make([]models.FavoriteBook, 0, len(favorites))
	for _, favorite := range favorites {
		book, ok := byID[favorite.BookID]
		if !ok {
			continue
		}
		resolved = append(resolved, models.FavoriteBook{FavoriteID: favorite.ID, Book: book})
	}
	return resolved, nil
}

// RemoveFavorite deletes a favorite record by its own id (not the book id).
func (p *Profile) RemoveFavorite(ctx context.Context, favoriteID int) error {
	return p.api.RemoveFavorite(ctx, favoriteID)
}
