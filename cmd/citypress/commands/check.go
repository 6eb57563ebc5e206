package commands

import (
	"fmt"

	"git.home.luguber.info/inful/citypress/internal/linkcheck"
)

// CheckCmd implements the 'check' command: it verifies internal links in a
// site that was already built, without rebuilding anything.
type CheckCmd struct {
	Dir string `arg:"" optional:"" help:"Site directory to check (defaults to the configured output directory)"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	dir := c.Dir
	if dir == "" {
		cfg, err := loadConfig(root.Config)
		if err != nil {
			return err
		}
		dir = resolveOutputDir("", cfg)
	}

	issues, err := linkcheck.VerifyDir(dir)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Printf("OK: no broken internal links in %s\n", dir)
		return nil
	}
	for _, issue := range issues {
		fmt.Printf("broken: %s -> %s\n", issue.Page, issue.URL)
	}
	return fmt.Errorf("%d broken internal links", len(issues))
}
