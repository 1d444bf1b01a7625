package main

import (
	"context"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/formatter"
	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/Memetgms/kitapinceleme/internal/views"
	"github.com/urfave/cli/v3"
)

// BooksList lists the catalog, applying server-side filters and the local
// search/sort view.
func (r *Runner) BooksList(ctx context.Context, cmd *cli.Command) error {
	search := cmd.String("search")
	sortFlag := cmd.String("sort")
	order := cmd.String("order")
	genreID := cmd.Int("genre")
	author := cmd.String("author")
	year := cmd.String("year")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	sortKey, err := views.ParseSortKey(sortFlag)
	if err != nil {
		return err
	}

	if err := r.catalog.LoadGenres(ctx); err != nil {
		r.logger.Warnf("failed to load genres: %v", err)
	}

	switch {
	case genreID > 0:
		err = r.catalog.LoadByGenre(ctx, genreID)
	case author != "":
		err = r.catalog.LoadByAuthor(ctx, author)
	case year != "":
		err = r.catalog.LoadByYear(ctx, year)
	case order != "":
		// --order delegates sorting to the backend's /query endpoint.
		err = r.catalog.LoadSorted(ctx, sortFlag, order)
		sortKey = views.SortNone
	default:
		err = r.catalog.LoadAll(ctx)
	}
	if err != nil {
		return err
	}

	r.catalog.View = views.View{SearchTerm: search, Sort: sortKey}
	books := r.catalog.Apply()

	if useJSON {
		return r.writeJSON(books, pretty)
	}

	if genreID > 0 {
		r.writePlain("Genre: %s\n", r.catalog.GenreName(genreID))
	}
	r.writePlain("Found %d books:\n\n", len(books))
	for i, book := range books {
		r.writePlain("%d. %s\n", i+1, book.Title)
		r.writePlain("   Author: %s\n", book.Author)
		r.writePlain("   Genre: %s\n", r.catalog.GenreName(book.GenreID))
		r.writePlain("   Price: %s\n", shared.FormatPrice(book.Price))
		if book.PublishedDate != "" {
			r.writePlain("   Published: %s\n", shared.FormatDate(book.PublishedDate))
		}
		r.writePlain("   ID: %d\n", book.ID)
		r.writePlain("\n")
	}

	return nil
}

// BooksShow prints one book with its reviews and computed average rating.
func (r *Runner) BooksShow(ctx context.Context, cmd *cli.Command) error {
	bookID := cmd.IntArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if bookID <= 0 {
		return fmt.Errorf("%w: book id argument is required", shared.ErrMissingArgument)
	}

	if err := r.detail.Load(ctx, bookID); err != nil {
		return err
	}
	book := r.detail.Book

	if useJSON {
		return r.writeJSON(book, pretty)
	}

	r.writePlainHeader(book.Title)
	r.writePlain("Author: %s\n", book.Author)
	r.writePlain("Genre: %s\n", book.GenreName)
	r.writePlain("Price: %s\n", shared.FormatPrice(book.Price))
	if book.PublishedDate != "" {
		r.writePlain("Published: %s\n", shared.FormatDate(book.PublishedDate))
	}
	r.writePlain("Rating: %s\n", views.RatingLabel(book.Reviews))
	if book.Description != "" {
		r.writePlain("\n%s\n", book.Description)
	}

	if len(book.Reviews) > 0 {
		r.writePlainln("Reviews:")
		for _, review := range book.Reviews {
			r.writePlain("  %s — %d/5\n", review.UserName, review.Rating)
			r.writePlain("  %s\n\n", review.Comment)
		}
	}

	return nil
}

// BooksHero prints the most popular and most favorited books.
func (r *Runner) BooksHero(ctx context.Context, cmd *cli.Command) error {
	hero, err := r.catalog.Hero(ctx)
	if err != nil {
		return err
	}

	if hero.Popular == nil && hero.Favorite == nil {
		return r.writePlain("No highlighted books yet\n")
	}

	if hero.Popular != nil {
		r.writePlain("Most popular: %s — %s (%s)\n",
			hero.Popular.Title, hero.Popular.Author, shared.FormatPrice(hero.Popular.Price))
	}
	if hero.Favorite != nil {
		r.writePlain("Most favorited: %s — %s (%s)\n",
			hero.Favorite.Title, hero.Favorite.Author, shared.FormatPrice(hero.Favorite.Price))
	}

	return nil
}

// BooksExport writes the catalog to CSV, Markdown or plain text.
func (r *Runner) BooksExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")

	if err := r.catalog.LoadGenres(ctx); err != nil {
		r.logger.Warnf("failed to load genres: %v", err)
	}
	if err := r.catalog.LoadAll(ctx); err != nil {
		return err
	}

	export := &models.CatalogExport{
		Title:  "Book Catalog",
		Books:  r.catalog.Books,
		Genres: r.catalog.Genres,
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Catalog exported\n")
		r.writePlain("  Books: %s\n", result.BooksFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)
	case "markdown", "md":
		path, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Catalog exported to %s\n", path)
	case "text", "txt":
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Catalog exported to %s\n", path)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	return nil
}
