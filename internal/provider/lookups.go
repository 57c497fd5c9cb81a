package provider

import (
	"context"
	"fmt"
	"time"

	"prospect-finder/internal/common/errors"
	"prospect-finder/internal/models"
)

// Provider endpoints
const (
	SearchUsersEndpoint      = "/api/linkedin/search/users"
	GetProfileEndpoint       = "/api/linkedin/get/profile"
	GetUserPostsEndpoint     = "/api/linkedin/get/user/posts"
	GetUserReactionsEndpoint = "/api/linkedin/get/user/reactions"
	GetEmailUserEndpoint     = "/api/linkedin/get/email/user"
)

// Per-lookup deadlines. These were tuned against the live provider.
const (
	ProfileTimeout   = 8 * time.Second
	PostsTimeout     = 6 * time.Second
	ReactionsTimeout = 6 * time.Second
	EmailTimeout     = 10 * time.Second
)

// Result counts requested from the provider.
const (
	searchCount   = 1
	searchTimeout = 300 // provider-side search budget, in seconds
	activityCount = 5
	emailCount    = 1
)

type searchUsersRequest struct {
	Keywords string `json:"keywords"`
	Count    int    `json:"count"`
	Timeout  int    `json:"timeout"`
}

type getProfileRequest struct {
	User           string `json:"user"`
	WithExperience bool   `json:"with_experience"`
	WithEducation  bool   `json:"with_education"`
	WithSkills     bool   `json:"with_skills"`
}

type userActivityRequest struct {
	URN   string `json:"urn"`
	Count int    `json:"count"`
}

type emailUserRequest struct {
	Email string `json:"email"`
	Count int    `json:"count"`
}

// SearchUsers runs the people search. A response that is not an array is
// treated as no results.
func (c *Client) SearchUsers(ctx context.Context, keywords string) ([]models.Entity, error) {
	raw, err := c.Call(ctx, SearchUsersEndpoint, searchUsersRequest{
		Keywords: keywords,
		Count:    searchCount,
		Timeout:  searchTimeout,
	}, 0)
	if err != nil {
		return nil, err
	}

	decoded, err := models.DecodeJSON(raw)
	if err != nil {
		return nil, errors.InternalError("failed to decode search results", err)
	}

	items, ok := decoded.([]interface{})
	if !ok {
		return nil, nil
	}

	results := make([]models.Entity, len(items))
	for i, item := range items {
		results[i], _ = models.AsEntity(item)
	}
	return results, nil
}

// GetProfile fetches the detailed profile (experience, education, skills).
func (c *Client) GetProfile(ctx context.Context, identifier string) (models.Entity, error) {
	raw, err := c.Call(ctx, GetProfileEndpoint, getProfileRequest{
		User:           identifier,
		WithExperience: true,
		WithEducation:  true,
		WithSkills:     true,
	}, ProfileTimeout)
	if err != nil {
		return nil, err
	}

	decoded, err := models.DecodeJSON(raw)
	if err != nil {
		return nil, errors.InternalError("failed to decode profile", err)
	}
	profile, ok := models.AsEntity(decoded)
	if !ok {
		return nil, unexpectedShape(GetProfileEndpoint, "object")
	}
	return profile, nil
}

// GetUserPosts fetches the most recent posts of a user.
func (c *Client) GetUserPosts(ctx context.Context, identifier string) ([]interface{}, error) {
	return c.callForArray(ctx, GetUserPostsEndpoint, userActivityRequest{URN: identifier, Count: activityCount}, PostsTimeout)
}

// GetUserReactions fetches the most recent reactions of a user.
func (c *Client) GetUserReactions(ctx context.Context, identifier string) ([]interface{}, error) {
	return c.callForArray(ctx, GetUserReactionsEndpoint, userActivityRequest{URN: identifier, Count: activityCount}, ReactionsTimeout)
}

// GetEmailUser resolves contact details from an email address.
func (c *Client) GetEmailUser(ctx context.Context, email string) ([]interface{}, error) {
	return c.callForArray(ctx, GetEmailUserEndpoint, emailUserRequest{Email: email, Count: emailCount}, EmailTimeout)
}

func (c *Client) callForArray(ctx context.Context, endpoint string, payload interface{}, timeout time.Duration) ([]interface{}, error) {
	raw, err := c.Call(ctx, endpoint, payload, timeout)
	if err != nil {
		return nil, err
	}

	decoded, err := models.DecodeJSON(raw)
	if err != nil {
		return nil, errors.InternalError(fmt.Sprintf("failed to decode %s response", endpoint), err)
	}
	items, ok := decoded.([]interface{})
	if !ok {
		return nil, unexpectedShape(endpoint, "array")
	}
	return items, nil
}

func unexpectedShape(endpoint, want string) error {
	return errors.InternalError(fmt.Sprintf("%s returned a non-%s payload", endpoint, want), nil)
}
