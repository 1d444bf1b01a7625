package services

import (
	"context"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/models"
)

// Favorites lists the current user's favorites. Requires authentication.
func (c *Client) Favorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := c.doRequest(ctx, "GET", "/favorites", nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// RemoveFavorite deletes a favorite by its own id (not the book id).
func (c *Client) RemoveFavorite(ctx context.Context, favoriteID int) error {
	endpoint := fmt.Sprintf("/favorites/%d", favoriteID)
	return c.doRequest(ctx, "DELETE", endpoint, nil, nil)
}
