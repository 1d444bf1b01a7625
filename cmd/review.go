package main

import (
	"context"

	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/views"
	"github.com/urfave/cli/v3"
)

// ReviewAdd validates and submits a review, then prints the recomputed
// rating from the reloaded detail view.
func (r *Runner) ReviewAdd(ctx context.Context, cmd *cli.Command) error {
	bookID := cmd.Int("book")
	rating := cmd.Int("rating")
	comment := cmd.String("comment")

	r.logger.Infof("submitting review for book %v", bookID)

	if err := r.detail.SubmitReview(ctx, services.ReviewInput{
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	}); err != nil {
		return err
	}

	r.writePlain("✓ Review submitted for '%s'\n", r.detail.Book.Title)
	r.writePlain("  Rating is now: %s\n", views.RatingLabel(r.detail.Book.Reviews))

	return nil
}

// ReviewDelete removes one of the signed-in user's reviews.
func (r *Runner) ReviewDelete(ctx context.Context, cmd *cli.Command) error {
	reviewID := cmd.Int("id")

	if !cmd.Bool("yes") {
		ok, err := r.confirm("Delete review %d?", reviewID)
		if err != nil {
			return err
		}
		if !ok {
			return r.writePlain("Aborted\n")
		}
	}

	r.logger.Infof("deleting review %v", reviewID)

	if err := r.profile.DeleteReview(ctx, reviewID); err != nil {
		return err
	}

	return r.writePlain("✓ Review %d deleted\n", reviewID)
}
