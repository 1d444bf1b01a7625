package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/session"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// assignableRoles are the roles the console can grant.
var assignableRoles = []string{session.AdminRole, "User"}

// Admin drives the management console: book CRUD, user listing, role
// assignment and dashboard statistics. Every operation requires an Admin
// session and fails with [shared.ErrForbidden] otherwise.
type Admin struct {
	api     *services.Client
	session *session.Store
	logger  *log.Logger
}

// NewAdmin creates the admin view-model.
func NewAdmin(api *services.Client, sess *session.Store, logger *log.Logger) *Admin {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Admin{api: api, session: sess, logger: logger}
}

func (a *Admin) guard() error {
	return a.session.RequireRole(session.AdminRole)
}

// Books lists the catalog for the management table.
func (a *Admin) Books(ctx context.Context) ([]models.Book, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.api.Books(ctx)
}

// CreateBook adds a book and returns the refreshed catalog.
func (a *Admin) CreateBook(ctx context.Context, input services.BookInput) ([]models.Book, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if err := a.api.CreateBook(ctx, input); err != nil {
		return nil, err
	}
	return a.api.Books(ctx)
}

// UpdateBook edits a book and returns the refreshed catalog.
func (a *Admin) UpdateBook(ctx context.Context, id int, input services.BookInput) ([]models.Book, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if err := a.api.UpdateBook(ctx, id, input); err != nil {
		return nil, err
	}
	return a.api.Books(ctx)
}

// DeleteBook removes a book and returns the refreshed catalog.
func (a *Admin) DeleteBook(ctx context.Context, id int) ([]models.Book, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	if err := a.api.DeleteBook(ctx, id); err != nil {
		return nil, err
	}
	return a.api.Books(ctx)
}

// Users lists every registered user.
func (a *Admin) Users(ctx context.Context) ([]models.User, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.api.Users(ctx)
}

// UsersByRole lists the users holding one role.
func (a *Admin) UsersByRole(ctx context.Context, role string) ([]models.User, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}
	return a.api.UsersByRole(ctx, role)
}

// AssignRole grants a role to a user. Only the roles the console knows about
// are accepted, matched case-insensitively and sent in canonical casing.
func (a *Admin) AssignRole(ctx context.Context, userID int, role string) error {
	if err := a.guard(); err != nil {
		return err
	}

	canonical := ""
	for _, known := range assignableRoles {
		if strings.EqualFold(role, known) {
			canonical = known
			break
		}
	}
	if canonical == "" {
		return fmt.Errorf("%w: role must be one of %s", shared.ErrInvalidArgument,
			strings.Join(assignableRoles, ", "))
	}

	return a.api.AssignRole(ctx, userID, canonical)
}

// UsersWithRoles lists every user annotated with their effective role. The
// admin membership is fetched once and checked by id, rather than once per
// user.
func (a *Admin) UsersWithRoles(ctx context.Context) ([]models.UserWithRole, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}

	users, err := a.api.Users(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := a.api.UsersByRole(ctx, session.AdminRole)
	if err != nil {
		return nil, err
	}

	adminIDs := make(map[int]struct{}, len(admins))
	for _, admin := range admins {
		adminIDs[admin.ID] = struct{}{}
	}

	annotated := make([]models.UserWithRole, 0, len(users))
	for _, user := range users {
		role := "User"
		if _, ok := adminIDs[user.ID]; ok {
			role = session.AdminRole
		}
		annotated = append(annotated, models.UserWithRole{User: user, Role: role})
	}
	return annotated, nil
}

// CountUnavailable marks a dashboard count whose fetch failed.
const CountUnavailable = -1

// Dashboard aggregates the console landing page. Counts that could not be
// fetched hold [CountUnavailable] so the page renders with the rest intact.
type Dashboard struct {
	Books  int
	Users  int
	Admins int
	Genres int

	// Recent holds at most five books, newest first.
	Recent []models.Book
}

// Dashboard fetches the four counts and the recent-books list in parallel.
// Each figure is independently fallible; the returned error joins whatever
// failures occurred while the stats remain renderable.
func (a *Admin) Dashboard(ctx context.Context) (*Dashboard, error) {
	if err := a.guard(); err != nil {
		return nil, err
	}

	stats := &Dashboard{
		Books:  CountUnavailable,
		Users:  CountUnavailable,
		Admins: CountUnavailable,
		Genres: CountUnavailable,
	}
	var bookErr, userErr, adminErr, genreErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var books []models.Book
		if books, bookErr = a.api.Books(gctx); bookErr == nil {
			stats.Books = len(books)
			stats.Recent = recentBooks(books, 5)
		}
		return nil
	})
	g.Go(func() error {
		var users []models.User
		if users, userErr = a.api.Users(gctx); userErr == nil {
			stats.Users = len(users)
		}
		return nil
	})
	g.Go(func() error {
		var admins []models.User
		if admins, adminErr = a.api.UsersByRole(gctx, session.AdminRole); adminErr == nil {
			stats.Admins = len(admins)
		}
		return nil
	})
	g.Go(func() error {
		var genres []models.Genre
		if genres, genreErr = a.api.Genres(gctx); genreErr == nil {
			stats.Genres = len(genres)
		}
		return nil
	})
	g.Wait()

	for _, err := range []error{bookErr, userErr, adminErr, genreErr} {
		if err != nil {
			a.logger.Warn("dashboard figure unavailable", "err", err)
		}
	}

	return stats, errors.Join(bookErr, userErr, adminErr, genreErr)
}

// recentBooks returns the newest n books by published date.
func recentBooks(books []models.Book, n int) []models.Book {
	sorted := ApplyView(books, View{Sort: SortDate})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
