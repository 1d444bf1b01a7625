package services

import "context"

// ReviewInput is the payload for /review/add.
type ReviewInput struct {
	BookID  int    `json:"bookId"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// AddReview submits a review for a book. Requires an authenticated session.
func (c *Client) AddReview(ctx context.Context, input ReviewInput) error {
	return c.doRequest(ctx, "POST", "/review/add", input, nil)
}
