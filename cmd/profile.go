package main

import (
	"context"

	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/urfave/cli/v3"
)

// ProfileShow prints the signed-in user's account details and reviews.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.profile.Load(ctx); err != nil {
		return err
	}
	data := r.profile.Data

	if useJSON {
		return r.writeJSON(data, pretty)
	}

	r.writePlainHeader(data.UserName)
	if data.Email != "" {
		r.writePlain("Email: %s\n", data.Email)
	}
	if r.profile.FellBack {
		r.writePlain("(no profile record yet, showing session details)\n")
	}

	if len(data.Reviews) == 0 {
		r.writePlain("\nNo reviews yet\n")
		return nil
	}

	r.writePlainln("Reviews (%d):", len(data.Reviews))
	for _, review := range data.Reviews {
		r.writePlain("  %s — %d/5\n", review.Title, review.Rating)
		r.writePlain("  %s\n", shared.TruncateText(review.Comment, 120))
		r.writePlain("  (review id %d)\n\n", review.ID)
	}

	return nil
}

// FavoritesList prints the user's favorites joined with catalog metadata.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	favorites, err := r.profile.Favorites(ctx)
	if err != nil {
		return err
	}

	if len(favorites) == 0 {
		return r.writePlain("No favorites yet\n")
	}

	r.writePlain("Found %d favorites:\n\n", len(favorites))
	for i, favorite := range favorites {
		r.writePlain("%d. %s — %s (%s)\n", i+1,
			favorite.Book.Title, favorite.Book.Author, shared.FormatPrice(favorite.Book.Price))
		r.writePlain("   (favorite id %d, book id %d)\n", favorite.FavoriteID, favorite.Book.ID)
	}

	return nil
}

// FavoritesRemove deletes a favorite record by its own id.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	favoriteID := cmd.Int("id")

	if err := r.profile.RemoveFavorite(ctx, favoriteID); err != nil {
		return err
	}

	return r.writePlain("✓ Favorite %d removed\n", favoriteID)
}
