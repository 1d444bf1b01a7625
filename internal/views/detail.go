package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/session"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/Memetgms/kitapinceleme/internal/validate"
	"github.com/charmbracelet/log"
)

// Detail loads one book with its reviews and drives the add-review workflow.
type Detail struct {
	api     *services.Client
	session *session.Store
	logger  *log.Logger

	// settleDelay gives the backend time to index a freshly added review
	// before the detail view is re-fetched.
	settleDelay time.Duration

	Book *models.BookDetail
}

// NewDetail creates a detail view-model with the default 2s settle delay.
func NewDetail(api *services.Client, sess *session.Store, logger *log.Logger) *Detail {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Detail{api: api, session: sess, logger: logger, settleDelay: 2 * time.Second}
}

// SetSettleDelay overrides the post-submit delay, mainly for tests.
func (d *Detail) SetSettleDelay(delay time.Duration) {
	d.settleDelay = delay
}

// Load fetches the book detail, including genre name and reviews. A missing
// book surfaces as [shared.ErrNotFound].
func (d *Detail) Load(ctx context.Context, bookID int) error {
	detail, err := d.api.BookDetails(ctx, bookID)
	if err != nil {
		return err
	}
	d.Book = detail
	return nil
}

// AverageRating returns the arithmetic mean of the review ratings, or 0 when
// there are none. Callers render the empty case as "no ratings yet" rather
// than a numeric zero.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// RatingLabel renders the average rating, distinguishing an unreviewed book
// from a genuinely low average.
func RatingLabel(reviews []models.Review) string {
	if len(reviews) == 0 {
		return "no ratings yet"
	}
	return fmt.Sprintf("%.1f/5 (%d reviews)", AverageRating(reviews), len(reviews))
}

// SubmitReview validates and submits a review for the loaded book, then
// reloads the detail so the new review and recomputed average are visible.
// Requires a live session.
func (d *Detail) SubmitReview(ctx context.Context, input services.ReviewInput) error {
	if d.session.Current().Anonymous() {
		return fmt.Errorf("%w: log in to submit a review", shared.ErrNotLoggedIn)
	}
	input.Comment = strings.TrimSpace(input.Comment)
	if err := validate.Review(input.Rating, input.Comment); err != nil {
		return err
	}
	if err := d.api.AddReview(ctx, input); err != nil {
		return err
	}

	// Let the write settle server-side before re-fetching.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d.settleDelay):
	}

	return d.Load(ctx, input.BookID)
}
