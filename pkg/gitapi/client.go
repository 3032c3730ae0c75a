package gitapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gittags/gittags/pkg/errcodes"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
)

// Repo identifies a hosted repository by owner and name
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepo parses an "owner/name" string into a Repo
func ParseRepo(full string) (Repo, error) {
	parts := strings.Split(full, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, errors.New("invalid repo")
	}
	return Repo{Owner: parts[0], Name: parts[1]}, nil
}

// Tag represents the JSON structure of a repository tag
type Tag struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// CommitDetail holds the commit metadata the feed needs
type CommitDetail struct {
	SHA         string
	AuthorName  string
	AuthorEmail string
	Date        time.Time
	Message     string
}

// commitEnvelope represents the JSON structure of a single commit response
type commitEnvelope struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name  string    `json:"name"`
			Email string    `json:"email"`
			Date  time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// TagSource is the read surface of the hosting API the feed engine needs
type TagSource interface {
	ListTags(ctx context.Context, repo Repo) ([]Tag, error)
	GetCommit(ctx context.Context, repo Repo, sha string) (*CommitDetail, error)
}

// Client is a simple client for interacting with GitHub's API
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

// NewClient creates a new instance of Client with a timeout
func NewClient(token string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
		Token:      token,
	}
}

// ListTags fetches all tags of a repository, following pagination.
// Order is preserved as returned by the API.
func (c *Client) ListTags(ctx context.Context, repo Repo) ([]Tag, error) {
	var allTags []Tag
	page := 1

	for {
		url := fmt.Sprintf("%s/repos/%s/%s/tags?page=%d&per_page=%d",
			c.BaseURL, repo.Owner, repo.Name, page, perPage)

		var tags []Tag
		if err := c.get(ctx, url, &tags); err != nil {
			return nil, fmt.Errorf("failed to fetch tags: %w", err)
		}

		allTags = append(allTags, tags...)

		if len(tags) < perPage {
			break
		}
		page++
	}

	return allTags, nil
}

// GetCommit fetches a single commit of a repository by its hash
func (c *Client) GetCommit(ctx context.Context, repo Repo, sha string) (*CommitDetail, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.BaseURL, repo.Owner, repo.Name, sha)

	var envelope commitEnvelope
	if err := c.get(ctx, url, &envelope); err != nil {
		return nil, fmt.Errorf("failed to fetch commit %s: %w", sha, err)
	}

	return &CommitDetail{
		SHA:         envelope.SHA,
		AuthorName:  envelope.Commit.Author.Name,
		AuthorEmail: envelope.Commit.Author.Email,
		Date:        envelope.Commit.Author.Date,
		Message:     envelope.Commit.Message,
	}, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errcodes.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return errcodes.ErrNotFound
	default:
		return fmt.Errorf("%w: received status code %d", errcodes.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}

	return nil
}
