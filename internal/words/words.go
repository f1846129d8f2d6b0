// apps/go-cli/internal/words/words.go
//
// Provides the guess dictionary for the game engine.
//
// Responsibilities:
//   - Load the dictionary from the cached word list file (one word per line).
//   - Download the word list from the remote source on first run or on request.
//   - Fall back to the embedded lists when neither is available.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • A Dictionary is immutable once built; With returns a copy.

package words

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// --- embedded defaults (the game works before the first download) ---

//go:embed default_allowed.txt
var embeddedAllowed string

//go:embed default_answers.txt
var embeddedAnswers string

// DefaultURL is the public list of valid five-letter guesses.
const DefaultURL = "https://gist.githubusercontent.com/dracos/dd0668f281e685bad51479e5acaadb93/raw/6bfa15d263d6d5b63840a8e5b64e04b382fdb079/valid-wordle-words.txt"

// FileName is the dictionary's name inside the cache dir.
const FileName = "dictionary"

// Dictionary is an immutable set of lowercase five-letter words.
type Dictionary struct {
	set map[string]struct{}
}

// New builds a Dictionary from list, dropping anything that is not five a–z letters.
func New(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		w = strings.TrimSpace(game.Fold(w))
		if game.IsAnswer(w) {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// Contains reports whether w is an accepted guess.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[game.Fold(w)]
	return ok
}

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.set) }

// With returns a new Dictionary that also holds extra.
func (d *Dictionary) With(extra ...string) *Dictionary {
	list := append(d.Words(), extra...)
	return New(list)
}

// Words returns the words in sorted order.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.set))
	for w := range d.set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Load reads a word list file.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (*Dictionary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(list), nil
}

// Fetch downloads the word list at url.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dictionary request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dictionary: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dictionary body: %w", err)
	}
	return body, nil
}

// Ensure returns the dictionary stored at path, downloading it from url first
// when the file is missing or force is set. A download with no usable words is
// rejected and the cached file is left as it was.
func Ensure(ctx context.Context, client *http.Client, path, url string, force bool) (*Dictionary, error) {
	if !force {
		d, err := Load(path)
		if err == nil {
			log.Debug().Str("path", path).Int("words", d.Len()).Msg("dictionary loaded")
			return d, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open dictionary %s: %w", path, err)
		}
	}

	body, err := Fetch(ctx, client, url)
	if err != nil {
		return nil, err
	}
	d, err := read(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("fetch dictionary: %s has no five-letter words", url)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, fmt.Errorf("write dictionary %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("words", d.Len()).Msg("dictionary downloaded")
	return d, nil
}

// Embedded returns the guess list compiled into the binary, plus the embedded answers.
func Embedded() (*Dictionary, error) {
	d, err := read(strings.NewReader(embeddedAllowed))
	if err != nil {
		return nil, fmt.Errorf("embedded dictionary: %w", err)
	}
	answers, err := Answers()
	if err != nil {
		return nil, err
	}
	return d.With(answers...), nil
}

// Answers returns the embedded answer list, used for offline play.
func Answers() ([]string, error) {
	d, err := read(strings.NewReader(embeddedAnswers))
	if err != nil {
		return nil, fmt.Errorf("embedded answers: %w", err)
	}
	if d.Len() == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return d.Words(), nil
}
