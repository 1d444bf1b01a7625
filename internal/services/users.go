// User, auth and profile endpoints.
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Memetgms/kitapinceleme/internal/models"
)

// LoginInput is the credentials payload for /users/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the signed token returned on successful login.
type LoginResult struct {
	Token string `json:"token"`
}

// RegisterInput is the payload for /users/register.
type RegisterInput struct {
	FullName string `json:"fullName"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// assignRoleInput is the payload for /users/assign-role.
type assignRoleInput struct {
	UserID   int    `json:"userId"`
	RoleName string `json:"roleName"`
}

// Login posts credentials and returns the signed session token.
func (c *Client) Login(ctx context.Context, input LoginInput) (string, error) {
	var result LoginResult
	if err := c.doRequest(ctx, "POST", "/users/login", input, &result); err != nil {
		return "", err
	}
	return result.Token, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.doRequest(ctx, "POST", "/users/register", input, nil)
}

// Users lists all accounts. Requires an authenticated admin session.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doRequest(ctx, "GET", "/users/list", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UsersByRole lists the accounts holding the given role.
func (c *Client) UsersByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	endpoint := "/users/list-by-role/" + url.PathEscape(role)
	if err := c.doRequest(ctx, "GET", endpoint, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AssignRole assigns roleName to the user with the given id.
func (c *Client) AssignRole(ctx context.Context, userID int, roleName string) error {
	return c.doRequest(ctx, "POST", "/users/assign-role", assignRoleInput{UserID: userID, RoleName: roleName}, nil)
}

// Profile retrieves a user's profile with their reviews. The id is the
// token's nameid claim, passed through verbatim.
func (c *Client) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	endpoint := "/userinfo/" + url.PathEscape(userID)
	if err := c.doRequest(ctx, "GET", endpoint, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteReview removes one of the current user's reviews by review id.
func (c *Client) DeleteReview(ctx context.Context, reviewID int) error {
	endpoint := fmt.Sprintf("/userinfo/delete-review/%d", reviewID)
	return c.doRequest(ctx, "DELETE", endpoint, nil, nil)
}
