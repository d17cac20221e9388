package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/idelchi/dirtree/internal/dirstat"
)

// SeparatorWidth is the width of the line separating the header from the tree.
const SeparatorWidth = 80

// PrintHeader outputs the banner preceding the tree.
// The path is shown as an absolute path.
func PrintHeader(w io.Writer, options dirstat.Options) error {
	root, err := filepath.Abs(options.Path)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\nAnalyzing directory tree from: %s\n", root)

	if options.Limited {
		fmt.Fprintf(&b, "Maximum depth level: %d\n", options.MaxDepth)
	}

	b.WriteString(strings.Repeat("=", SeparatorWidth) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", dirstat.ErrOutput, err)
	}

	return nil
}
