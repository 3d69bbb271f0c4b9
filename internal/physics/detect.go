package physics

import (
	"sort"

	"github.com/zaptastic/core/internal/core/ecs"
)

// Body is the detector's view of one entity.
type Body struct {
	ID       ecs.EntityID
	Category Category
	Box      AABB
}

// Contact is an unordered pair of touching entities.
type Contact struct {
	A, B ecs.EntityID
}

// Detect returns every reportable overlapping pair using sort-and-sweep on
// the x axis. Output is ordered by (A, B) with A < B, so repeated calls over
// the same bodies yield the same sequence.
func Detect(bodies []Body) []Contact {
	if len(bodies) < 2 {
		return nil
	}
	sorted := make([]Body, len(bodies))
	copy(sorted, bodies)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Box.Min.X != sorted[j].Box.Min.X {
			return sorted[i].Box.Min.X < sorted[j].Box.Min.X
		}
		return sorted[i].ID < sorted[j].ID
	})

	var out []Contact
	for i := range sorted {
		a := sorted[i]
		for j := i + 1; j < len(sorted); j++ {
			b := sorted[j]
			if b.Box.Min.X >= a.Box.Max.X {
				break
			}
			if !Reportable(a.Category, b.Category) || !a.Box.Intersects(b.Box) {
				continue
			}
			if a.ID < b.ID {
				out = append(out, Contact{A: a.ID, B: b.ID})
			} else {
				out = append(out, Contact{A: b.ID, B: a.ID})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
