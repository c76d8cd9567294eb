// internal/output/tree.go
package output

import (
	"fmt"
	"io"
	"strings"

	"msalign-core/tree"
)

// WriteTree renders the guide tree as an indented ASCII listing, one node
// per line, children indented under their parent.
func WriteTree(w io.Writer, t *tree.Tree) error {
	var err error
	_, err = fmt.Fprintln(w, "Guide tree (UPGMA):")
	if err != nil {
		return err
	}
	t.Walk(func(_ int, n tree.Node, depth int) {
		if err != nil {
			return
		}
		indent := strings.Repeat("  ", depth)
		if n.Leaf() {
			_, err = fmt.Fprintf(w, "%s├─ sequence %d\n", indent, n.SeqIndex)
			return
		}
		_, err = fmt.Fprintf(w, "%s├─ merge (dist: %.3f)\n", indent, n.Dist)
	})
	return err
}
