package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://api.github.com/"

// Options configures a Client
type Options struct {
	BaseURL string
	// Token is optional; an empty token keeps requests unauthenticated
	Token   string
	Timeout time.Duration
	// HTTPClient overrides the transport; Token is ignored when set
	HTTPClient *http.Client
}

// Client handles GitHub REST API interactions
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		if opts.Token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
			httpClient = oauth2.NewClient(context.Background(), ts)
		} else {
			httpClient = &http.Client{}
		}
		httpClient.Timeout = opts.Timeout
		if httpClient.Timeout <= 0 {
			httpClient.Timeout = 30 * time.Second
		}
	}

	client := gh.NewClient(httpClient)

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// Repository is the subset of the upstream repository object the site uses
type Repository struct {
	Name            *string
	Description     *string
	StargazersCount *int
	Language        *string
	HTMLURL         *string
}

// ListUserRepositories lists up to perPage public repositories of a user or
// organization via GET /users/{owner}/repos?per_page={perPage}
func (c *Client) ListUserRepositories(ctx context.Context, owner string, perPage int) ([]Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, owner, opts)
	if err != nil {
		return nil, describeError(err)
	}

	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			out = append(out, Repository{})
			continue
		}
		out = append(out, Repository{
			Name:            r.Name,
			Description:     r.Description,
			StargazersCount: r.StargazersCount,
			Language:        r.Language,
			HTMLURL:         r.HTMLURL,
		})
	}
	return out, nil
}

// ErrRateLimited is wrapped by errors caused by the upstream rate limit
var ErrRateLimited = errors.New("github rate limit exceeded")

func describeError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w (resets at %s): %v", ErrRateLimited, rateErr.Rate.Reset.Time.Format(time.RFC3339), err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w (secondary limit): %v", ErrRateLimited, err)
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return fmt.Errorf("github API returned status %d: %w", respErr.Response.StatusCode, err)
	}
	return fmt.Errorf("failed to fetch repositories: %w", err)
}
