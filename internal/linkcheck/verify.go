package linkcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/citypress/internal/errors"
)

// Issue is one broken internal link: the page it appears on and the URL
// that failed to resolve.
type Issue struct {
	Page string
	URL  string
}

// VerifyDir walks every HTML file under root and checks that each internal
// href/src resolves to an emitted file: directory-style URLs must have an
// index.html, file URLs must exist.
func VerifyDir(root string) ([]Issue, error) {
	var issues []Issue

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}

		page, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		links, err := ExtractLinks(f)
		_ = f.Close()
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, "parse emitted page").WithContext("page", page)
		}

		for _, link := range links {
			if !IsInternal(link.URL) {
				continue
			}
			if !resolves(root, link.URL) {
				issues = append(issues, Issue{Page: page, URL: link.URL})
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, "walk output directory").WithContext("root", root)
	}
	return issues, nil
}

// resolves maps a site-relative URL onto the output tree.
func resolves(root, url string) bool {
	// Links are checked against the artifact set only; queries and
	// fragments do not change the target file.
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if url == "" {
		return true
	}

	rel := filepath.FromSlash(strings.TrimPrefix(url, "/"))
	target := filepath.Join(root, rel)
	if strings.HasSuffix(url, "/") {
		target = filepath.Join(target, "index.html")
	}

	info, err := os.Stat(target)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
