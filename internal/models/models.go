// package models defines the data model for the bookstore client
package models

// Book represents a catalog entry as returned by the books endpoints.
type Book struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	GenreID       int     `json:"genreId"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	PublishedDate string  `json:"publishedDate"`
	Photo         string  `json:"photo,omitempty"`
}

// Genre labels books and drives the catalog filter controls.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Review belongs to a Book and a User. Rating is 1..5.
type Review struct {
	ID       int    `json:"id"`
	BookID   int    `json:"bookId"`
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// BookDetail is the /bookdetails payload: a book plus its genre name and reviews.
type BookDetail struct {
	Book
	GenreName string   `json:"genreName"`
	Reviews   []Review `json:"reviews"`
}

// Favorite is the join entity between a user and a book, deletable by its own id.
type Favorite struct {
	ID     int `json:"id"`
	BookID int `json:"bookId"`
	UserID int `json:"userId"`
}

// FavoriteBook is a favorite cross-referenced with catalog metadata for display.
type FavoriteBook struct {
	FavoriteID int
	Book       Book
}

// User is an account as listed by the admin endpoints.
type User struct {
	ID        int    `json:"id"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	DateAdded string `json:"dateAdded"`
}

// UserWithRole decorates a User with its single presented role (Admin or User).
type UserWithRole struct {
	User
	Role string `json:"role"`
}

// ProfileReview is a review as it appears on a user profile, carrying the
// reviewed book's display metadata.
type ProfileReview struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Photo   string `json:"photo,omitempty"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Profile is the /userinfo payload.
type Profile struct {
	UserName string          `json:"userName"`
	Email    string          `json:"email"`
	Reviews  []ProfileReview `json:"reviews"`
}

// CatalogExport bundles a book listing with its genre labels for the export
// formatters.
type CatalogExport struct {
	Title  string  `json:"title"`
	Books  []Book  `json:"books"`
	Genres []Genre `json:"genres,omitempty"`
}
