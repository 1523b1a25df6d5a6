package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agoralab-core/internal/domain/repo"
	"agoralab-core/internal/github"
	infraGitHub "agoralab-core/internal/infrastructure/github"
)

func TestFetchOrgRepositories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/kyegomez/repos":
			assert.Equal(t, "7", r.URL.Query().Get("per_page"))
			fmt.Fprint(w, `[{"name": "zeta", "stargazers_count": 300, "html_url": "https://github.com/kyegomez/zeta", "language": "Python"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "Not Found"}`)
		}
	}))
	defer server.Close()

	client, err := github.NewClient(github.Options{BaseURL: server.URL})
	require.NoError(t, err)
	service := infraGitHub.NewGitHubService(client)

	org, _ := repo.NewOrgID("kyegomez")
	repos, err := service.FetchOrgRepositories(context.Background(), org, 7)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "zeta", *repos[0].Name)
	assert.Equal(t, 300, *repos[0].StargazersCount)
	assert.Nil(t, repos[0].Description)

	missing, _ := repo.NewOrgID("nobody")
	_, err = service.FetchOrgRepositories(context.Background(), missing, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}
