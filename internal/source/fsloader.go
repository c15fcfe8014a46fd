package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/kyaoi/chronoline/internal/timeline"
)

var errNotDir = errors.New("path is not a directory")

// DefaultInclude selects markdown event files anywhere below the root.
var DefaultInclude = []string{"**/*.md", "**/*.markdown"}

// FSLoader reads one event per markdown file under a root directory. The
// front matter carries the record fields and the body is the description.
type FSLoader struct {
	root    string
	include []string
}

type eventMatter struct {
	Year     *int   `yaml:"year"`
	Title    string `yaml:"title"`
	Image    string `yaml:"image"`
	Category string `yaml:"category"`
	Link     string `yaml:"link"`
}

// NewFSLoader creates a loader for root. Empty include falls back to
// DefaultInclude.
func NewFSLoader(root string, include []string) *FSLoader {
	if len(include) == 0 {
		include = DefaultInclude
	}
	return &FSLoader{root: root, include: include}
}

// Files lists the matching event files relative to the root, in slash form.
func (l *FSLoader) Files() ([]string, error) {
	info, err := os.Stat(l.root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errNotDir
	}

	var files []string
	err = filepath.WalkDir(l.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != l.root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if l.matches(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Dirs returns the root and every non-skipped directory below it.
func (l *FSLoader) Dirs() ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(l.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != l.root && shouldSkipDir(d.Name()) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}

// Load parses every matching file.
func (l *FSLoader) Load() ([]timeline.Event, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	events := make([]timeline.Event, 0, len(files))
	for _, rel := range files {
		ev, err := l.loadFile(rel)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (l *FSLoader) loadFile(rel string) (timeline.Event, error) {
	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(rel)))
	if err != nil {
		return timeline.Event{}, err
	}
	return ParseMarkdown(rel, data)
}

// ParseMarkdown reads one event from a markdown document with front matter.
// name is only used in error messages.
func ParseMarkdown(name string, data []byte) (timeline.Event, error) {
	var meta eventMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return timeline.Event{}, fmt.Errorf("parsing front matter in %s: %w", name, err)
	}
	if meta.Year == nil {
		return timeline.Event{}, fmt.Errorf("%s: %w", name, ErrMissingYear)
	}
	title := meta.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return timeline.Event{
		Year:        *meta.Year,
		Title:       title,
		Description: strings.TrimSpace(string(body)),
		Image:       meta.Image,
		Category:    meta.Category,
		Link:        meta.Link,
	}, nil
}

func (l *FSLoader) matches(rel string) bool {
	for _, pattern := range l.include {
		if ok, err := doublestar.Match(filepath.ToSlash(pattern), rel); err == nil && ok {
			return true
		}
	}
	return false
}

func shouldSkipDir(name string) bool {
	switch strings.ToLower(name) {
	case ".git", "node_modules", ".hg", ".svn", ".idea", ".vscode":
		return true
	default:
		return false
	}
}
