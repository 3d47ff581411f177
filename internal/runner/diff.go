package runner

import (
	"strings"

	"github.com/indaco/pomsync/internal/printer"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderInlineDiff shows after with removed text struck through and added
// text highlighted.
func renderInlineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString(printer.Deleted(d.Text))
		case diffmatchpatch.DiffInsert:
			sb.WriteString(printer.Inserted(d.Text))
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
