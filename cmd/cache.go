package main

import (
	"context"

	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/urfave/cli/v3"
)

// CacheRefresh fetches the catalog and replaces the local cached copy.
func (r *Runner) CacheRefresh(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("refreshing local catalog cache")

	books, err := r.api.Books(ctx)
	if err != nil {
		return err
	}

	if err := r.cache.ReplaceAll(books); err != nil {
		return err
	}

	r.writePlain("✓ Cache refreshed: %d books\n", len(books))
	return nil
}

// CacheList prints the locally cached catalog without touching the network.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	books, err := r.cache.List()
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(books, true)
	}

	if len(books) == 0 {
		return r.writePlain("Cache is empty, run 'kitap cache refresh'\n")
	}

	r.writePlain("Cached catalog (%d books):\n\n", len(books))
	for i, book := range books {
		r.writePlain("%d. %s — %s (%s)\n", i+1,
			book.Title, book.Author, shared.FormatPrice(book.Price))
	}

	return nil
}
