// Package lint performs a static scan of markdown sources without invoking
// the generator.
package lint

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// IssueKind classifies a lint finding.
type IssueKind string

const (
	IssueEmptyFile  IssueKind = "empty-file"
	IssueBrokenLink IssueKind = "broken-link"
)

// Issue is a single finding in one file.
type Issue struct {
	Kind   IssueKind
	File   string // path relative to the scanned root
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.File, i.Detail, i.Kind)
}

// Result aggregates the outcome of a scan.
type Result struct {
	FilesScanned int
	Issues       []Issue
}

// ScanDir walks root for markdown files and reports empty files and
// relative links whose targets do not exist.
func ScanDir(root string) (*Result, error) {
	result := &Result{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		body, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}

		result.FilesScanned++
		if len(strings.TrimSpace(string(body))) == 0 {
			result.Issues = append(result.Issues, Issue{
				Kind:   IssueEmptyFile,
				File:   rel,
				Detail: "file has no content",
			})
			return nil
		}

		for _, dest := range extractLinkDestinations(body) {
			if target, broken := brokenRelativeTarget(path, dest); broken {
				result.Issues = append(result.Issues, Issue{
					Kind:   IssueBrokenLink,
					File:   rel,
					Detail: fmt.Sprintf("link target not found: %s", target),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// extractLinkDestinations parses a markdown body and collects link and image
// destinations.
func extractLinkDestinations(body []byte) []string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var dests []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			dests = append(dests, string(node.Destination))
		case *gmast.Image:
			dests = append(dests, string(node.Destination))
		}
		return gmast.WalkContinue, nil
	})
	return dests
}

// brokenRelativeTarget reports whether dest is a relative file link whose
// target is missing on disk. Absolute URLs and pure anchors are skipped.
func brokenRelativeTarget(sourcePath, dest string) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") {
		return "", false
	}
	if u, err := url.Parse(dest); err == nil && u.Scheme != "" {
		return "", false
	}
	if strings.HasPrefix(dest, "/") {
		// Site-absolute paths resolve against the generator's output layout,
		// not the source tree.
		return "", false
	}

	// Strip anchors and query strings before touching the filesystem.
	target := dest
	if idx := strings.IndexAny(target, "#?"); idx >= 0 {
		target = target[:idx]
	}
	if target == "" {
		return "", false
	}

	resolved := filepath.Join(filepath.Dir(sourcePath), filepath.FromSlash(target))
	if _, err := os.Stat(resolved); err != nil {
		return target, true
	}
	return "", false
}
