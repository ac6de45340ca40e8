package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func issuesOfKind(result *Result, kind IssueKind) []Issue {
	var out []Issue
	for _, issue := range result.Issues {
		if issue.Kind == kind {
			out = append(out, issue)
		}
	}
	return out
}

func TestScanDirCleanTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home\n\nSee [guide](guide.md).\n")
	writeFile(t, root, "guide.md", "# Guide\n\nBack to [home](index.md#top).\n")

	result, err := ScanDir(root)
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Empty(t, result.Issues)
}

func TestScanDirBrokenRelativeLink(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "See [missing](missing.md) and [ok](sub/page.md).\n")
	writeFile(t, root, "sub/page.md", "# Page\n")

	result, err := ScanDir(root)
	require.NoError(t, err)

	broken := issuesOfKind(result, IssueBrokenLink)
	require.Len(t, broken, 1)
	assert.Equal(t, "index.md", broken[0].File)
	assert.Contains(t, broken[0].Detail, "missing.md")
}

func TestScanDirEmptyFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "empty.md", "   \n\n")

	result, err := ScanDir(root)
	require.NoError(t, err)

	empty := issuesOfKind(result, IssueEmptyFile)
	require.Len(t, empty, 1)
	assert.Equal(t, "empty.md", empty[0].File)
}

func TestScanDirSkipsExternalAndAnchorLinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md",
		"[ext](https://example.com/page)\n[mail](mailto:docs@example.com)\n[anchor](#section)\n[abs](/api/ref.md)\n")

	result, err := ScanDir(root)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestScanDirImageTargets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "![diagram](img/arch.png)\n")

	result, err := ScanDir(root)
	require.NoError(t, err)

	broken := issuesOfKind(result, IssueBrokenLink)
	require.Len(t, broken, 1)
	assert.Contains(t, broken[0].Detail, "img/arch.png")
}

func TestScanDirIgnoresNonMarkdown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes.txt", "[broken](nope.md)")
	writeFile(t, root, "index.md", "# Home\n")

	result, err := ScanDir(root)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesScanned)
}
