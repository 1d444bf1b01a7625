package views

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// SortKey enumerates the client-side catalog sort options.
type SortKey string

const (
	SortNone   SortKey = ""
	SortTitle  SortKey = "title"
	SortAuthor SortKey = "author"
	SortPrice  SortKey = "price"
	SortDate   SortKey = "date"
)

// ParseSortKey validates a sort flag value.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortNone, SortTitle, SortAuthor, SortPrice, SortDate:
		return key, nil
	default:
		return SortNone, fmt.Errorf("%w: unknown sort key %q", shared.ErrInvalidFlag, s)
	}
}

// View is the pure derivation input for the rendered catalog: a search term
// matched against title, author and description, and a sort key.
type View struct {
	SearchTerm string
	Sort       SortKey
}

// ApplyView derives the displayed book list from the fetched collection.
//
// Pure and idempotent: the input slice is never mutated and identical inputs
// yield identical output. Search matches case-insensitively on substrings;
// title and author sort lexicographically, price ascending, date in
// descending chronological order. An empty sort key preserves input order.
func ApplyView(books []models.Book, view View) []models.Book {
	term := strings.ToLower(strings.TrimSpace(view.SearchTerm))

	filtered := make([]models.Book, 0, len(books))
	for _, book := range books {
		if term == "" || bookMatches(book, term) {
			filtered = append(filtered, book)
		}
	}

	switch view.Sort {
	case SortTitle:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})
	case SortAuthor:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Author) < strings.ToLower(filtered[j].Author)
		})
	case SortPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortDate:
		sort.SliceStable(filtered, func(i, j int) bool {
			ti, _ := shared.ParseDate(filtered[i].PublishedDate)
			tj, _ := shared.ParseDate(filtered[j].PublishedDate)
			return ti.After(tj)
		})
	}

	return filtered
}

func bookMatches(book models.Book, term string) bool {
	return strings.Contains(strings.ToLower(book.Title), term) ||
		strings.Contains(strings.ToLower(book.Author), term) ||
		strings.Contains(strings.ToLower(book.Description), term)
}

// Catalog holds the fetched book and genre collections and the active view.
//
// Every load replaces the in-memory book collection wholesale; the displayed
// list is always re-derivable from (Books, View) via [Catalog.Apply].
type Catalog struct {
	api    *services.Client
	cache  *repositories.BookCacheRepository
	logger *log.Logger

	Books  []models.Book
	Genres []models.Genre
	View   View
}

// NewCatalog creates a catalog view-model. cache may be nil to disable the
// local write-through copy.
func NewCatalog(api *services.Client, cache *repositories.BookCacheRepository, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Catalog{api: api, cache: cache, logger: logger}
}

// LoadAll fetches the full catalog.
func (c *Catalog) LoadAll(ctx context.Context) error {
	books, err := c.api.Books(ctx)
	if err != nil {
		return err
	}
	c.setBooks(books)
	return nil
}

// LoadByGenre fetches the books for one genre.
func (c *Catalog) LoadByGenre(ctx context.Context, genreID int) error {
	books, err := c.api.BooksByGenre(ctx, genreID)
	if err != nil {
		return err
	}
	c.setBooks(books)
	return nil
}

// LoadSorted fetches the catalog sorted server-side.
func (c *Catalog) LoadSorted(ctx context.Context, sortBy, order string) error {
	books, err := c.api.BooksSorted(ctx, sortBy, order)
	if err != nil {
		return err
	}
	c.setBooks(books)
	return nil
}

// LoadByAuthor fetches the catalog filtered server-side by author.
func (c *Catalog) LoadByAuthor(ctx context.Context, author string) error {
	books, err := c.api.BooksByAuthor(ctx, author)
	if err != nil {
		return err
	}
	c.setBooks(books)
	return nil
}

// LoadByYear fetches the catalog filtered server-side by publication year.
func (c *Catalog) LoadByYear(ctx context.Context, year string) error {
	books, err := c.api.BooksByYear(ctx, year)
	if err != nil {
		return err
	}
	c.setBooks(books)
	return nil
}

// LoadGenres fetches the genre list used for filter labels.
func (c *Catalog) LoadGenres(ctx context.Context) error {
	genres, err := c.api.Genres(ctx)
	if err != nil {
		return err
	}
	c.Genres = genres
	return nil
}

// Apply derives the displayed list from the current collection and view.
func (c *Catalog) Apply() []models.Book {
	return ApplyView(c.Books, c.View)
}

// GenreName resolves a genre id against the loaded genres.
func (c *Catalog) GenreName(id int) string {
	for _, genre := range c.Genres {
		if genre.ID == id {
			return genre.Name
		}
	}
	return "N/A"
}

// setBooks replaces the collection and refreshes the local cache. A cache
// write failure is logged, never surfaced: the cache is an offline fallback.
func (c *Catalog) setBooks(books []models.Book) {
	c.Books = books
	if c.cache != nil {
		if err := c.cache.ReplaceAll(books); err != nil {
			c.logger.Warn("failed to refresh book cache", "err", err)
		}
	}
}

// HeroBooks carries the two hero widget results. A nil entry means the
// backend has no such book yet, which is not an error.
type HeroBooks struct {
	Popular  *models.Book
	Favorite *models.Book
}

// Hero fetches the most-popular and most-favorite books in parallel. The two
// fetches are independently fallible: a 404 leaves the slot empty, and a real
// failure on one side never discards the other side's result. The returned
// error joins whatever real failures occurred.
func (c *Catalog) Hero(ctx context.Context) (HeroBooks, error) {
	var (
		hero           HeroBooks
		popErr, favErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hero.Popular, popErr = c.api.MostPopularBook(gctx)
		return nil
	})
	g.Go(func() error {
		hero.Favorite, favErr = c.api.MostFavoriteBook(gctx)
		return nil
	})
	g.Wait()

	if errors.Is(popErr, shared.ErrNotFound) {
		hero.Popular, popErr = nil, nil
	}
	if errors.Is(favErr, shared.ErrNotFound) {
		hero.Favorite, favErr = nil, nil
	}

	return hero, errors.Join(popErr, favErr)
}
