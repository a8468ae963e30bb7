//go:build property
// +build property

package icon

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
)

// TestIconProperties checks that any valid breakpoint set yields markup that
// passes the audit with one query and one label per breakpoint.
func TestIconProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("valid sets synthesize auditable markup", prop.ForAll(
		func(sizes []int) bool {
			input := make(map[string]breakpoint.Value)
			for i, size := range sizes {
				input[fmt.Sprintf("bp-%d", i)] = breakpoint.String(fmt.Sprintf("%d.%drem", size, i))
			}
			list, err := breakpoint.Normalize(input)
			if err != nil {
				return false
			}

			report, err := Audit(Synthesize(list))
			if err != nil {
				return false
			}
			if len(report.MediaQueries) != len(list) || len(report.Labels) != len(list)+1 {
				return false
			}
			for i, bp := range list {
				if report.MediaQueries[i] != bp.Value.CSS() || report.Labels[i+1].Text != bp.Name {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(40, gen.IntRange(0, 200)).SuchThat(func(s []int) bool { return len(s) > 0 }),
	))

	properties.Property("ids are unique", prop.ForAll(
		func(a, b int) bool {
			return a == b || GenerateID(a) != GenerateID(b)
		},
		gen.IntRange(0, 1<<20),
		gen.IntRange(0, 1<<20),
	))

	properties.TestingRun(t)
}
