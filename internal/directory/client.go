// Package directory looks up user records in the external identity
// provider. The gateway only ever needs one thing from it: the email
// address behind a user id.
package directory

import (
	"context"
	"fmt"

	client "github.com/mutablelogic/go-client"
)

// Resolver maps user ids to email addresses.
type Resolver interface {
	UserEmail(ctx context.Context, userID string) (string, error)
}

// Client is a directory HTTP client over the identity provider's REST API.
type Client struct {
	*client.Client
}

var _ Resolver = (*Client)(nil)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// New creates a directory client for the given endpoint, e.g.
// "https://id.example.com/api". token is sent as a bearer credential when
// non-empty.
func New(endpoint, token string, opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts, client.OptEndpoint(endpoint))
	if token != "" {
		opts = append(opts, client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token}))
	}

	c := new(Client)
	cl, err := client.New(opts...)
	if err != nil {
		return nil, err
	}
	c.Client = cl
	return c, nil
}

// UserEmail resolves the email address for userID via GET /users/{id}.
func (c *Client) UserEmail(ctx context.Context, userID string) (string, error) {
	var response userResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("users", userID)); err != nil {
		return "", err
	}
	if response.Email == "" {
		return "", fmt.Errorf("user %q has no email", userID)
	}
	return response.Email, nil
}
