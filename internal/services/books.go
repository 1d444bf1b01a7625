// Book, genre and catalog query endpoints.
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Memetgms/kitapinceleme/internal/models"
)

// BookInput is the payload for creating or updating a book.
type BookInput struct {
	ID            int     `json:"id,omitempty"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	GenreID       int     `json:"genreId"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	PublishedDate string  `json:"publishedDate"`
	Photo         string  `json:"photo,omitempty"`
}

// Books retrieves the full catalog.
func (c *Client) Books(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.doRequest(ctx, "GET", "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook adds a new book to the catalog.
func (c *Client) CreateBook(ctx context.Context, input BookInput) error {
	return c.doRequest(ctx, "POST", "/books", input, nil)
}

// UpdateBook replaces the book with the given id.
func (c *Client) UpdateBook(ctx context.Context, id int, input BookInput) error {
	input.ID = id
	endpoint := fmt.Sprintf("/books/%d", id)
	return c.doRequest(ctx, "PUT", endpoint, input, nil)
}

// DeleteBook removes the book with the given id.
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("/books/%d", id)
	return c.doRequest(ctx, "DELETE", endpoint, nil, nil)
}

// Genres retrieves all genres.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := c.doRequest(ctx, "GET", "/genre", nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// BooksByGenre retrieves the books labelled with the given genre. The
// backend serves this straight off the genre path.
func (c *Client) BooksByGenre(ctx context.Context, genreID int) ([]models.Book, error) {
	var books []models.Book
	endpoint := fmt.Sprintf("/genre/%d", genreID)
	if err := c.doRequest(ctx, "GET", endpoint, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// BookDetails retrieves one book with its genre name and reviews.
// A missing book surfaces as [shared.ErrNotFound].
func (c *Client) BookDetails(ctx context.Context, id int) (*models.BookDetail, error) {
	var detail models.BookDetail
	endpoint := fmt.Sprintf("/bookdetails/%d", id)
	if err := c.doRequest(ctx, "GET", endpoint, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// BooksByAuthor retrieves books filtered server-side by author.
func (c *Client) BooksByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	var books []models.Book
	endpoint := "/filter/by-author?author=" + url.QueryEscape(author)
	if err := c.doRequest(ctx, "GET", endpoint, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// BooksByYear retrieves books filtered server-side by publication year.
func (c *Client) BooksByYear(ctx context.Context, year string) ([]models.Book, error) {
	var books []models.Book
	endpoint := "/filter/by-year?year=" + url.QueryEscape(year)
	if err := c.doRequest(ctx, "GET", endpoint, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// BooksSorted retrieves books sorted server-side. Both parameters are
// optional; an empty sortBy asks for the server's natural order.
func (c *Client) BooksSorted(ctx context.Context, sortBy, order string) ([]models.Book, error) {
	endpoint := "/query"
	if sortBy != "" {
		endpoint += "?sortBy=" + url.QueryEscape(sortBy)
		if order != "" {
			endpoint += "&order=" + url.QueryEscape(order)
		}
	}

	var books []models.Book
	if err := c.doRequest(ctx, "GET", endpoint, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// MostPopularBook retrieves the hero "most popular" book.
// Returns [shared.ErrNotFound] when no such book exists yet.
func (c *Client) MostPopularBook(ctx context.Context) (*models.Book, error) {
	var book models.Book
	if err := c.doRequest(ctx, "GET", "/MostPopular/most-popular-book", nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// MostFavoriteBook retrieves the hero "most favorite" book.
// Returns [shared.ErrNotFound] when no such book exists yet.
func (c *Client) MostFavoriteBook(ctx context.Context) (*models.Book, error) {
	var book models.Book
	if err := c.doRequest(ctx, "GET", "/MostPopular/most-favorite-book", nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}
