package repo

import (
	"fmt"
)

// Record is an immutable domain entity holding the public metadata of one
// repository, tagged with the organization it was listed under
type Record struct {
	org            OrgID
	name           Name
	description    *string
	stargazerCount int
	language       *string
	url            URL
}

// NewRecord creates a new Record entity
func NewRecord(
	org OrgID,
	name string,
	description *string,
	stargazerCount int,
	language *string,
	url string,
) (*Record, error) {
	if org.String() == "" {
		return nil, ErrMalformedRecord("organization", fmt.Errorf("organization identifier cannot be empty"))
	}

	repoName, err := NewName(name)
	if err != nil {
		return nil, ErrMalformedRecord("name", err)
	}

	repoURL, err := NewURL(url)
	if err != nil {
		return nil, ErrMalformedRecord("url", err)
	}

	if stargazerCount < 0 {
		return nil, ErrMalformedRecord("stargazer count", fmt.Errorf("must not be negative, got %d", stargazerCount))
	}

	return &Record{
		org:            org,
		name:           repoName,
		description:    cloneString(description),
		stargazerCount: stargazerCount,
		language:       cloneString(language),
		url:            repoURL,
	}, nil
}

// FromGitHub builds a Record from a raw upstream item. Missing required fields
// yield a MALFORMED_RECORD error so the caller can skip the item.
func FromGitHub(org OrgID, gh *GitHubRepository) (*Record, error) {
	if gh == nil {
		return nil, ErrMalformedRecord("repository", fmt.Errorf("item is null"))
	}
	if gh.Name == nil {
		return nil, ErrMalformedRecord("name", fmt.Errorf("field is missing"))
	}
	if gh.HTMLURL == nil {
		return nil, ErrMalformedRecord("html_url", fmt.Errorf("field is missing"))
	}
	if gh.StargazersCount == nil {
		return nil, ErrMalformedRecord("stargazers_count", fmt.Errorf("field is missing"))
	}

	return NewRecord(org, *gh.Name, gh.Description, *gh.StargazersCount, gh.Language, *gh.HTMLURL)
}

// Getters

func (r *Record) Org() OrgID {
	return r.org
}

func (r *Record) Name() Name {
	return r.name
}

func (r *Record) Description() *string {
	return cloneString(r.description)
}

func (r *Record) StargazerCount() int {
	return r.stargazerCount
}

func (r *Record) Language() *string {
	return cloneString(r.language)
}

func (r *Record) URL() URL {
	return r.url
}

// String returns string representation (for debugging)
func (r *Record) String() string {
	return fmt.Sprintf("Record{org: %s, name: %s, stars: %d}",
		r.org.String(), r.name.String(), r.stargazerCount)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
