package commands

import (
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/itemsvc/internal/version"
)

// VersionCmd implements the 'version' command.
type VersionCmd struct {
	out io.Writer
}

func (v *VersionCmd) Run(_ *Global, _ *CLI) error {
	w := v.out
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintf(w, "itemsvc %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
	return err
}
