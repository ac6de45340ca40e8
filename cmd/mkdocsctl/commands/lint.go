package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/mkdocsctl/internal/config"
	apperrors "git.home.luguber.info/inful/mkdocsctl/internal/errors"
	"git.home.luguber.info/inful/mkdocsctl/internal/lint"
)

// LintCmd implements the 'lint' command: a static scan of the markdown
// sources. No external process is invoked.
type LintCmd struct{}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}

	docsDir := filepath.Join(cfg.Site.Dir, cfg.Site.DocsDir)
	result, err := lint.ScanDir(docsDir)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CategoryFileSystem, apperrors.SeverityFatal, "lint scan failed").
			WithContext("docs_dir", docsDir)
	}

	for _, issue := range result.Issues {
		fmt.Println(issue.String())
	}

	if len(result.Issues) > 0 {
		return apperrors.New(apperrors.CategoryValidation, apperrors.SeverityError, "lint found issues").
			WithContext("files", result.FilesScanned).
			WithContext("issues", len(result.Issues))
	}

	fmt.Printf("Scanned %d files, no issues found\n", result.FilesScanned)
	return nil
}
