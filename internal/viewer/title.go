package viewer

import (
	"fmt"
	"strings"

	"github.com/Faultbox/rubberpick/internal/engine/picking"
)

// maxTitleIDs caps how many IDs the window title lists.
const maxTitleIDs = 8

// Title formats the window title from the active strategy and selection.
func Title(base string, strategy picking.Strategy, ids []uint32) string {
	var b strings.Builder
	b.WriteString(base)
	if strategy != "" {
		fmt.Fprintf(&b, " [%s]", strategy)
	}
	if len(ids) == 0 {
		b.WriteString(" - nothing selected")
		return b.String()
	}

	fmt.Fprintf(&b, " - %d selected:", len(ids))
	for i, id := range ids {
		if i == maxTitleIDs {
			fmt.Fprintf(&b, " +%d", len(ids)-maxTitleIDs)
			break
		}
		fmt.Fprintf(&b, " %d", id)
	}
	return b.String()
}
