// Package greeting renders the two lines printed by argecho.
package greeting

import (
	"io"
	"strings"

	"github.com/flarebyte/argecho/internal/catalog"
)

// Lines returns the banner and the arguments line for args.
// A non-empty args always gets a space after the label, even when the
// joined text is empty.
func Lines(c catalog.Catalog, args []string) [2]string {
	second := c.NoArguments
	if len(args) > 0 {
		second = c.ArgumentsLabel + " " + strings.Join(args, " ")
	}
	return [2]string{c.Banner, second}
}

// Write prints both lines to w in a single write.
func Write(w io.Writer, c catalog.Catalog, args []string) error {
	lines := Lines(c, args)
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
