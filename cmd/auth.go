package main

import (
	"context"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/Memetgms/kitapinceleme/internal/validate"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in with email and password and persists the session.
//
// With no --email the remembered address from a previous --remember login is
// reused.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	remember := cmd.Bool("remember")

	if email == "" {
		email = r.session.RememberedUser()
		if email != "" {
			r.logger.Infof("using remembered email %v", email)
		}
	}
	if email == "" {
		return fmt.Errorf("%w: --email is required", shared.ErrMissingArgument)
	}

	if err := validate.Login(email, password); err != nil {
		return err
	}

	sess, err := r.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if remember {
		if err := r.session.RememberUser(email); err != nil {
			r.logger.Warnf("failed to remember email: %v", err)
		}
	}

	r.writePlain("✓ Signed in as %s", sess.UserName)
	if sess.UserRole != "" {
		r.writePlain(" (%s)", sess.UserRole)
	}
	r.writePlain("\n")

	return nil
}

// AuthRegister creates a new account. Registration does not sign in; the
// backend issues tokens only on login.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	fullName := cmd.String("fullname")
	userName := cmd.String("username")
	email := cmd.String("email")
	password := cmd.String("password")

	if err := validate.Registration(fullName, userName, email, password, password); err != nil {
		return err
	}

	r.logger.Infof("registering account %v", userName)

	if err := r.api.Register(ctx, services.RegisterInput{
		FullName: fullName,
		UserName: userName,
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}

	r.writePlain("✓ Account created\n")
	r.writePlain("You can now sign in: kitap auth login -e %s -p <password>\n", email)

	return nil
}

// AuthLogout clears the stored session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.session.Logout(); err != nil {
		return err
	}
	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows the current session state, re-checking token expiry.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	sess := r.session.Current()
	if sess.Anonymous() {
		r.writePlain("Not signed in\n")
		if remembered := r.session.RememberedUser(); remembered != "" {
			r.writePlain("Remembered email: %s\n", remembered)
		}
		return nil
	}

	r.writePlain("Signed in as: %s\n", sess.UserName)
	r.writePlain("User id: %s\n", sess.UserID)
	if sess.UserRole != "" {
		r.writePlain("Role: %s\n", sess.UserRole)
	}

	return nil
}
