package post_test

import (
	"testing"
	"time"

	"agoralab-core/internal/domain/post"
)

func mustPost(t *testing.T, slug, date string) *post.Post {
	t.Helper()
	published, err := post.ParsePublishedAt(date)
	if err != nil {
		t.Fatalf("ParsePublishedAt(%q) error = %v", date, err)
	}
	p, err := post.NewPost(slug, "Title "+slug, published, "", nil)
	if err != nil {
		t.Fatalf("NewPost() error = %v", err)
	}
	return p
}

func TestNewPost(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		slug    string
		title   string
		date    time.Time
		wantErr bool
	}{
		{"valid post", "hello-world", "Hello", date, false},
		{"empty slug", "", "Hello", date, true},
		{"slug with path", "a/b", "Hello", date, true},
		{"empty title", "hello", "  ", date, true},
		{"missing date", "hello", "Hello", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := post.NewPost(tt.slug, tt.title, tt.date, "", nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPost() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePublishedAt(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-04-09", time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC), false},
		{"2024-04-09T10:30:00Z", time.Date(2024, 4, 9, 10, 30, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"April 9th", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := post.ParsePublishedAt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePublishedAt(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParsePublishedAt(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSortByPublishedAt(t *testing.T) {
	older := mustPost(t, "older", "2023-01-01")
	newest := mustPost(t, "newest", "2024-06-01")
	tieA := mustPost(t, "tie-a", "2024-01-01")
	tieB := mustPost(t, "tie-b", "2024-01-01")

	input := []*post.Post{older, tieA, newest, tieB}
	sorted := post.SortByPublishedAt(input)

	want := []*post.Post{newest, tieA, tieB, older}
	for i := range want {
		if sorted[i] != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].Slug(), want[i].Slug())
		}
	}
	if input[0] != older {
		t.Error("SortByPublishedAt must not reorder its input")
	}
}
