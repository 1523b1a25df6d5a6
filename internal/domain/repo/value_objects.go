package repo

import (
	"fmt"
	"strings"
)

// OrgID is a value object identifying one of the configured source-hosting accounts
type OrgID struct {
	value string
}

// NewOrgID creates a new OrgID with validation
func NewOrgID(id string) (OrgID, error) {
	id = strings.TrimSpace(id)

	if id == "" {
		return OrgID{}, fmt.Errorf("organization identifier cannot be empty")
	}

	if strings.ContainsAny(id, "/?# ") {
		return OrgID{}, fmt.Errorf("organization identifier %q contains invalid characters", id)
	}

	if len(id) > 39 {
		return OrgID{}, fmt.Errorf("organization identifier too long (max 39 characters)")
	}

	return OrgID{value: id}, nil
}

// ParseOrgIDs converts an ordered list of raw identifiers, keeping their order
func ParseOrgIDs(ids []string) ([]OrgID, error) {
	orgs := make([]OrgID, 0, len(ids))
	for _, id := range ids {
		org, err := NewOrgID(id)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	if len(orgs) == 0 {
		return nil, ErrNoOrganizations()
	}
	return orgs, nil
}

func (o OrgID) String() string {
	return o.value
}

func (o OrgID) Equals(other OrgID) bool {
	return o.value == other.value
}

// Name is a value object representing a repository name
type Name struct {
	value string
}

// NewName creates a new Name with validation
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return Name{}, fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > 100 {
		return Name{}, fmt.Errorf("repository name too long (max 100 characters)")
	}

	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// URL is a value object representing a repository's web address
type URL struct {
	value string
}

// NewURL creates a new URL with validation
func NewURL(url string) (URL, error) {
	url = strings.TrimSpace(url)

	if url == "" {
		return URL{}, fmt.Errorf("repository URL cannot be empty")
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return URL{}, fmt.Errorf("repository URL must be a valid HTTP(S) URL")
	}

	return URL{value: url}, nil
}

func (u URL) String() string {
	return u.value
}

func (u URL) Equals(other URL) bool {
	return u.value == other.value
}
