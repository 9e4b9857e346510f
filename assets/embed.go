// Package assets embeds the static data the solver ships with: the fallback
// corpus and the SQL migrations of the statistics database.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed fallback_words.txt sql/*.sql
var FS embed.FS

func readWords(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		for _, w := range strings.Fields(s) {
			out = append(out, strings.ToLower(w))
		}
	}
	return out, sc.Err()
}

// FallbackWords returns the embedded fallback corpus.
func FallbackWords() ([]string, error) {
	return readWords("fallback_words.txt")
}

// Migrations returns the embedded migration directory; files are applied in
// lexical order.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
