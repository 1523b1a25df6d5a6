package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"agoralab-core/internal/domain/post"
)

var frontmatterDelimiter = []byte("---")

// frontmatter is the YAML header of a post file
type frontmatter struct {
	Title       string `yaml:"title"`
	PublishedAt string `yaml:"publishedAt"`
	Summary     string `yaml:"summary"`
	Image       string `yaml:"image"`
}

// FileSource implements post.Source over a directory of .md and .mdx files
type FileSource struct {
	dir    string
	logger *zap.Logger
}

// NewFileSource creates a post source reading from dir
func NewFileSource(dir string, logger *zap.Logger) post.Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{dir: dir, logger: logger}
}

// LoadPosts reads every post file in the directory in file name order.
// Files that cannot be parsed are skipped; a missing directory yields no posts.
func (s *FileSource) LoadPosts(ctx context.Context) ([]*post.Post, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("Posts directory does not exist", zap.String("dir", s.dir))
			return []*post.Post{}, nil
		}
		return nil, fmt.Errorf("failed to read posts directory: %w", err)
	}

	posts := make([]*post.Post, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isPostFile(entry.Name()) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		p, err := readPost(path)
		if err != nil {
			s.logger.Warn("Skipping post", zap.String("file", path), zap.Error(err))
			continue
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func isPostFile(name string) bool {
	return slices.Contains([]string{".md", ".mdx"}, strings.ToLower(filepath.Ext(name)))
}

func readPost(path string) (*post.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	header, err := parseFrontmatter(data)
	if err != nil {
		return nil, err
	}

	publishedAt, err := post.ParsePublishedAt(header.PublishedAt)
	if err != nil {
		return nil, err
	}

	var image *string
	if header.Image != "" {
		image = &header.Image
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return post.NewPost(slug, header.Title, publishedAt, header.Summary, image)
}

// parseFrontmatter decodes the YAML block between the leading --- lines
func parseFrontmatter(data []byte) (*frontmatter, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), frontmatterDelimiter) {
		return nil, fmt.Errorf("missing frontmatter")
	}

	var block bytes.Buffer
	for _, line := range lines[1:] {
		if bytes.Equal(bytes.TrimSpace(line), frontmatterDelimiter) {
			var header frontmatter
			if err := yaml.Unmarshal(block.Bytes(), &header); err != nil {
				return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
			}
			return &header, nil
		}
		block.Write(line)
	}

	return nil, fmt.Errorf("unterminated frontmatter")
}
