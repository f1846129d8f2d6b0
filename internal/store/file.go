package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// fileStore keeps one file per date, named YYYY-MM-DD, holding the word on its first line.
type fileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a file-per-date Store.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Get(ctx context.Context, date string) (string, error) {
	if !validDate(date) {
		return "", ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, date))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("open word cache %s: %w", date, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read word cache %s: %w", date, err)
		}
		return "", ErrNotFound
	}
	w := strings.TrimSpace(sc.Text())
	if w == "" {
		return "", ErrNotFound
	}
	return w, nil
}

func (s *fileStore) Put(ctx context.Context, date, word string) error {
	if !validDate(date) {
		return fmt.Errorf("store: invalid date %q", date)
	}
	path := filepath.Join(s.dir, date)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(word+"\n"), 0o644); err != nil {
		return fmt.Errorf("write word cache %s: %w", date, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename word cache %s: %w", date, err)
	}
	return nil
}

func (s *fileStore) Dates(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list word cache: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && validDate(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sortDates(out)
	return out, nil
}

func (s *fileStore) Close() error { return nil }

// validDate keeps arbitrary keys (and path separators) out of the cache dir.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// sortDates sorts YYYY-MM-DD keys; lexical order is chronological.
func sortDates(d []string) { sort.Strings(d) }
