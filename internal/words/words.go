// internal/words/words.go
//
// Corpus acquisition for the solver.
//
// Responsibilities:
//   - Load word lists from files or remote URLs (answers + allowed guesses).
//   - Merge them with the embedded curated list, normalize and deduplicate.
//   - Never hand the engine an empty corpus: on any failure the embedded
//     fallback list is served and the result is flagged as degraded.
//
// Sources (see config):
//   WORDS_ANSWERS_URL / WORDS_ALLOWED_URL   fetched concurrently over HTTP
//   WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE read from disk
//   neither                                 embedded list only
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase; first occurrence wins.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// ErrEmpty reports a source that produced no usable words.
var ErrEmpty = errors.New("words: list is empty")

// Provider supplies raw word lists.
type Provider interface {
	// Words returns the concatenated lists of the source.
	Words(ctx context.Context) ([]string, error)
	// Name describes the source for logs and diagnostics.
	Name() string
}

// Result is the outcome of Load.
type Result struct {
	Words    []string // normalized, deduplicated, never empty
	Source   string
	Degraded bool  // true when the fallback list replaced a failed source
	Err      error // underlying failure when Degraded
}

// Load reads p, merges the embedded curated list and normalizes the result.
// A nil provider serves the embedded list alone. Failures degrade to the
// embedded list instead of returning an error.
func Load(ctx context.Context, p Provider) Result {
	extra, err := assets.FallbackWords()
	if err != nil {
		// Embedded at build time; a failure here means a broken build.
		log.Error().Err(err).Msg("read embedded word list")
	}
	extra = Normalize(extra)
	if len(extra) == 0 {
		extra = []string{"raise", "crane", "slate", "about", "other"}
	}

	if p == nil {
		return Result{Words: extra, Source: "embedded"}
	}

	list, err := p.Words(ctx)
	if err == nil && len(Normalize(list)) == 0 {
		err = ErrEmpty
	}
	if err != nil {
		log.Warn().Err(err).Str("source", p.Name()).Int("fallback", len(extra)).Msg("word list unavailable, using fallback")
		return Result{Words: extra, Source: "embedded", Degraded: true, Err: err}
	}

	merged := Normalize(append(list, extra...))
	log.Info().Str("source", p.Name()).Int("words", len(merged)).Msg("word list loaded")
	return Result{Words: merged, Source: p.Name()}
}

// Normalize lowercases and trims every entry, keeps only 5-letter
// alphabetic words and drops duplicates, preserving first-occurrence order.
func Normalize(list []string) []string {
	cleaned := lo.Map(list, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	valid := lo.Filter(cleaned, func(w string, _ int) bool {
		return len(w) == 5 && isAlpha(w)
	})
	return lo.Uniq(valid)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ----------------------------------------------------------------------------
// Files

// FileProvider reads one or more local word files.
type FileProvider struct {
	Paths []string
}

// Name implements Provider.
func (f FileProvider) Name() string { return "file:" + strings.Join(f.Paths, ",") }

// Words implements Provider.
func (f FileProvider) Words(ctx context.Context) ([]string, error) {
	var out []string
	for _, p := range f.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		list, err := readWordFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	return out, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanWords(f)
}

// scanWords splits r into whitespace-separated entries.
func scanWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, strings.Fields(sc.Text())...)
	}
	return out, sc.Err()
}

// ----------------------------------------------------------------------------
// HTTP

// HTTPProvider fetches plain-text word lists, one request per URL, in parallel.
type HTTPProvider struct {
	URLs   []string
	Client *http.Client
}

// Name implements Provider.
func (h HTTPProvider) Name() string { return "http:" + strings.Join(h.URLs, ",") }

// Words implements Provider. Lists are concatenated in URL order.
func (h HTTPProvider) Words(ctx context.Context) ([]string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	lists := make([][]string, len(h.URLs))
	g, ctx := errgroup.WithContext(ctx)
	for i, u := range h.URLs {
		i, u := i, u
		g.Go(func() error {
			list, err := fetch(ctx, client, u)
			if err != nil {
				return err
			}
			lists[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lo.Flatten(lists), nil
}

func fetch(ctx context.Context, client *http.Client, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, res.StatusCode)
	}
	return scanWords(res.Body)
}

// ----------------------------------------------------------------------------

// FromSources picks a provider: URLs first, then files; nil when neither is
// configured. Empty entries are ignored.
func FromSources(urls, files []string) Provider {
	urls = lo.Compact(urls)
	files = lo.Compact(files)
	switch {
	case len(urls) > 0:
		return HTTPProvider{URLs: urls}
	case len(files) > 0:
		return FileProvider{Paths: files}
	}
	return nil
}
