// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the signed-in session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "email",
						Aliases: []string{"e"},
						Usage:   "Account email",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "remember",
						Usage: "Remember this email for the next login",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "fullname",
						Usage:    "Full display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:    "status",
				Aliases: []string{"whoami"},
				Usage:   "Show the current session state",
				Action:  r.AuthStatus,
			},
		},
	}
}

// booksCommand handles catalog browsing operations
func booksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "books",
		Aliases: []string{"catalog"},
		Usage:   "Browse the book catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List books with optional search, filters and sorting",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Filter by substring of title, author or description",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort key: title, author, price or date",
					},
					&cli.StringFlag{
						Name:  "order",
						Usage: "Sort server-side instead: asc or desc",
					},
					&cli.IntFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Fetch only books in this genre id",
					},
					&cli.StringFlag{
						Name:  "author",
						Usage: "Fetch only books by this author",
					},
					&cli.StringFlag{
						Name:  "year",
						Usage: "Fetch only books published in this year",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.BooksList,
			},
			{
				Name:  "show",
				Usage: "Show one book with its reviews",
				Arguments: []cli.Argument{
					&cli.IntArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.BooksShow,
			},
			{
				Name:   "hero",
				Usage:  "Show the most popular and most favorited books",
				Action: r.BooksHero,
			},
			{
				Name:  "export",
				Usage: "Export the catalog to CSV, Markdown or plain text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown or text",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (format-specific default)",
					},
				},
				Action: r.BooksExport,
			},
		},
	}
}

// reviewCommand handles review submission and deletion
func reviewCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "Submit and manage book reviews",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Submit a review for a book",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "book",
						Aliases:  []string{"b"},
						Usage:    "Book id to review",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "rating",
						Usage:    "Star rating from 1 to 5",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "comment",
						Usage:    "Review text (10 to 500 characters)",
						Required: true,
					},
				},
				Action: r.ReviewAdd,
			},
			{
				Name:  "delete",
				Usage: "Delete one of your own reviews",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Review id to delete",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.ReviewDelete,
			},
		},
	}
}

// profileCommand shows the signed-in user's profile
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show your account details and reviews",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.ProfileShow,
	}
}

// favoritesCommand manages the signed-in user's favorites
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"favs"},
		Usage:   "Manage your favorite books",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List your favorite books",
				Action: r.FavoritesList,
			},
			{
				Name:  "remove",
				Usage: "Remove a favorite by its favorite id",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Favorite id to remove",
						Required: true,
					},
				},
				Action: r.FavoritesRemove,
			},
		},
	}
}

// adminCommand handles the management console operations
func adminCommand(r *Runner) *cli.Command {
	bookFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "Book title",
		},
		&cli.StringFlag{
			Name:  "author",
			Usage: "Book author",
		},
		&cli.IntFlag{
			Name:  "genre",
			Usage: "Genre id",
		},
		&cli.FloatFlag{
			Name:  "price",
			Usage: "Price in TRY",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Book description",
		},
		&cli.StringFlag{
			Name:  "published",
			Usage: "Publication date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "photo",
			Usage: "Cover photo URL",
		},
	}

	return &cli.Command{
		Name:  "admin",
		Usage: "Management console (requires the Admin role)",
		Commands: []*cli.Command{
			{
				Name:  "book",
				Usage: "Manage catalog entries",
				Commands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add a book to the catalog",
						Flags:  bookFlags,
						Action: r.AdminBookAdd,
					},
					{
						Name:  "update",
						Usage: "Update an existing book",
						Flags: append([]cli.Flag{
							&cli.IntFlag{
								Name:     "id",
								Usage:    "Book id to update",
								Required: true,
							},
						}, bookFlags...),
						Action: r.AdminBookUpdate,
					},
					{
						Name:  "delete",
						Usage: "Delete a book from the catalog",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:     "id",
								Usage:    "Book id to delete",
								Required: true,
							},
						},
						Action: r.AdminBookDelete,
					},
				},
			},
			{
				Name:  "users",
				Usage: "List registered users",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "role",
						Usage: "List only users holding this role",
					},
					&cli.BoolFlag{
						Name:  "with-roles",
						Usage: "Annotate every user with their effective role",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AdminUsers,
			},
			{
				Name:  "role",
				Usage: "Manage user roles",
				Commands: []*cli.Command{
					{
						Name:  "assign",
						Usage: "Grant a role to a user",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:     "user",
								Aliases:  []string{"u"},
								Usage:    "User id",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "role",
								Usage:    "Role to grant (Admin or User)",
								Required: true,
							},
						},
						Action: r.AdminAssignRole,
					},
				},
			},
			{
				Name:   "dashboard",
				Usage:  "Show catalog and account statistics",
				Action: r.AdminDashboard,
			},
		},
	}
}

// cacheCommand handles the local catalog cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the local catalog cache",
		Commands: []*cli.Command{
			{
				Name:   "refresh",
				Usage:  "Fetch the catalog and refresh the local copy",
				Action: r.CacheRefresh,
			},
			{
				Name:  "list",
				Usage: "List the locally cached catalog (works offline)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheList,
			},
		},
	}
}

// apiCommand handles raw calls against the bookstore API
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the bookstore backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET against an API path, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"browse"},
		Usage:   "Launch interactive TUI for catalog browsing",
		Action:  r.TUI,
	}
}
