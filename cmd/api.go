package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIGet makes a direct GET request against the bookstore API
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	pretty := cmd.Bool("pretty")

	if path == "" {
		return fmt.Errorf("%w: path argument is required", shared.ErrMissingArgument)
	}

	r.logger.Info("GET request", "path", path)

	var result any
	if err := r.api.Get(ctx, path, &result); err != nil {
		return err
	}

	return r.writeJSON(result, pretty)
}

// APIPost makes a direct POST request with a JSON body
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	data := cmd.String("data")

	if path == "" {
		return fmt.Errorf("%w: path argument is required", shared.ErrMissingArgument)
	}

	var body any
	if err := json.Unmarshal([]byte(data), &body); err != nil {
		return fmt.Errorf("%w: data is not valid JSON: %v", shared.ErrInvalidArgument, err)
	}

	r.logger.Info("POST request", "path", path)

	var result any
	if err := r.api.Post(ctx, path, body, &result); err != nil {
		return err
	}

	return r.writeJSON(result, true)
}
