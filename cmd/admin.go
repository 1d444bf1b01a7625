package main

import (
	"context"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/Memetgms/kitapinceleme/internal/views"
	"github.com/urfave/cli/v3"
)

func bookInputFromFlags(cmd *cli.Command) services.BookInput {
	return services.BookInput{
		Title:         cmd.String("title"),
		Author:        cmd.String("author"),
		GenreID:       cmd.Int("genre"),
		Price:         cmd.Float("price"),
		Description:   cmd.String("description"),
		PublishedDate: cmd.String("published"),
		Photo:         cmd.String("photo"),
	}
}

// AdminBookAdd creates a catalog entry and prints the refreshed count.
func (r *Runner) AdminBookAdd(ctx context.Context, cmd *cli.Command) error {
	input := bookInputFromFlags(cmd)
	if input.Title == "" || input.Author == "" {
		return fmt.Errorf("%w: --title and --author are required", shared.ErrMissingArgument)
	}

	r.logger.Infof("adding book %v", input.Title)

	books, err := r.admin.CreateBook(ctx, input)
	if err != nil {
		return err
	}

	r.writePlain("✓ Book added: %s\n", input.Title)
	r.writePlain("  Catalog now holds %d books\n", len(books))
	return nil
}

// AdminBookUpdate edits an existing catalog entry.
func (r *Runner) AdminBookUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	input := bookInputFromFlags(cmd)

	r.logger.Infof("updating book %v", id)

	if _, err := r.admin.UpdateBook(ctx, id, input); err != nil {
		return err
	}

	return r.writePlain("✓ Book %d updated\n", id)
}

// AdminBookDelete removes a catalog entry.
func (r *Runner) AdminBookDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")

	r.logger.Infof("deleting book %v", id)

	books, err := r.admin.DeleteBook(ctx, id)
	if err != nil {
		return err
	}

	r.writePlain("✓ Book %d deleted\n", id)
	r.writePlain("  Catalog now holds %d books\n", len(books))
	return nil
}

// AdminUsers lists users, optionally filtered by role or annotated with roles.
func (r *Runner) AdminUsers(ctx context.Context, cmd *cli.Command) error {
	role := cmd.String("role")
	withRoles := cmd.Bool("with-roles")
	useJSON := cmd.Bool("json")

	if withRoles {
		users, err := r.admin.UsersWithRoles(ctx)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(users, true)
		}

		r.writePlain("Found %d users:\n\n", len(users))
		for i, user := range users {
			r.writePlain("%d. %s <%s> — %s\n", i+1, user.UserName, user.Email, user.Role)
		}
		return nil
	}

	if role != "" {
		list, err := r.admin.UsersByRole(ctx, role)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(list, true)
		}
		r.writePlain("Found %d users with role %s:\n\n", len(list), role)
		for i, user := range list {
			r.writePlain("%d. %s <%s>\n", i+1, user.UserName, user.Email)
		}
		return nil
	}

	list, err := r.admin.Users(ctx)
	if err != nil {
		return err
	}
	if useJSON {
		return r.writeJSON(list, true)
	}
	r.writePlain("Found %d users:\n\n", len(list))
	for i, user := range list {
		r.writePlain("%d. %s <%s>\n", i+1, user.UserName, user.Email)
		if user.DateAdded != "" {
			r.writePlain("   Joined: %s\n", shared.FormatDate(user.DateAdded))
		}
	}

	return nil
}

// AdminAssignRole grants a role to a user.
func (r *Runner) AdminAssignRole(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.Int("user")
	role := cmd.String("role")

	r.logger.Infof("assigning role %v to user %v", role, userID)

	if err := r.admin.AssignRole(ctx, userID, role); err != nil {
		return err
	}

	return r.writePlain("✓ Role %s granted to user %d\n", role, userID)
}

// AdminDashboard prints the console statistics. Figures that could not be
// fetched render as "n/a" while the rest stay intact.
func (r *Runner) AdminDashboard(ctx context.Context, cmd *cli.Command) error {
	stats, err := r.admin.Dashboard(ctx)
	if stats == nil {
		return err
	}
	if err != nil {
		r.logger.Warnf("some dashboard figures are unavailable: %v", err)
	}

	r.writePlainHeader("Dashboard")
	r.writePlain("Books:  %s\n", countLabel(stats.Books))
	r.writePlain("Users:  %s\n", countLabel(stats.Users))
	r.writePlain("Admins: %s\n", countLabel(stats.Admins))
	r.writePlain("Genres: %s\n", countLabel(stats.Genres))

	if len(stats.Recent) > 0 {
		r.writePlainln("Recently published:")
		for i, book := range stats.Recent {
			r.writePlain("%d. %s — %s (%s)\n", i+1,
				book.Title, book.Author, shared.FormatDate(book.PublishedDate))
		}
	}

	return nil
}

func countLabel(n int) string {
	if n == views.CountUnavailable {
		return "n/a"
	}
	return fmt.Sprintf("%d", n)
}
