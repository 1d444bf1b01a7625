package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/session"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/Memetgms/kitapinceleme/internal/views"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	api     *services.Client
	session *session.Store
	db      *sql.DB
	cache   *repositories.BookCacheRepository

	catalog *views.Catalog
	detail  *views.Detail
	profile *views.Profile
	admin   *views.Admin

	logger *log.Logger
	output io.Writer
	input  io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	API     *services.Client
	Session *session.Store
	DB      *sql.DB
	Cache   *repositories.BookCacheRepository
	Logger  *log.Logger
	Output  io.Writer
	Input   io.Reader
}

// NewRunner creates a new Runner with the provided dependencies and builds
// the view-models on top of them.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	r := &Runner{
		config:  opts.Config,
		api:     opts.API,
		session: opts.Session,
		db:      opts.DB,
		cache:   opts.Cache,
		logger:  opts.Logger,
		output:  opts.Output,
		input:   opts.Input,
	}

	r.catalog = views.NewCatalog(opts.API, opts.Cache, opts.Logger)
	r.detail = views.NewDetail(opts.API, opts.Session, opts.Logger)
	r.detail.SetSettleDelay(opts.Config.API.SettleDelay())
	r.profile = views.NewProfile(opts.API, opts.Session, opts.Cache, opts.Logger)
	r.admin = views.NewAdmin(opts.API, opts.Session, opts.Logger)

	return r
}

// SetLogger swaps the runner's logger, propagating it to the view-models.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.catalog = views.NewCatalog(r.api, r.cache, logger)
	r.detail = views.NewDetail(r.api, r.session, logger)
	r.detail.SetSettleDelay(r.config.API.SettleDelay())
	r.profile = views.NewProfile(r.api, r.session, r.cache, logger)
	r.admin = views.NewAdmin(r.api, r.session, logger)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, booksCommand, reviewCommand, profileCommand,
		favoritesCommand, adminCommand, cacheCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// confirm prompts for a yes/no answer, defaulting to no.
func (r *Runner) confirm(format string, args ...any) (bool, error) {
	if err := r.writePlain(format+" (y/N): ", args...); err != nil {
		return false, err
	}

	var answer string
	if _, err := fmt.Fscanln(r.input, &answer); err != nil {
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
