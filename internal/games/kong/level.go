package kong

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Collision tags for the level space.
const (
	tagLadder = "ladder"
	tagFire   = "fire"
)

// spaceCell is the broad-phase cell size in world units.
const spaceCell = 40

// Level holds the static geometry of a stage and the actors bound to it.
// Platforms are checked directly against falling bodies; ladders and fires
// are overlap queries and go through a resolv space.
type Level struct {
	Platforms []core.Box
	Ladders   []core.Box
	Fires     []*Fire
	Kong      *Kong
	Goal      *Goal

	space *resolv.Space
}

// NewLevel builds a level from the layout configuration.
func NewLevel(world config.WorldConfig, layout config.LayoutConfig) *Level {
	l := &Level{
		Platforms: boxes(layout.Platforms),
		Ladders:   boxes(layout.Ladders),
		Kong:      newKong(box(layout.Kong)),
		Goal:      &Goal{Box: box(layout.Goal)},
		space:     resolv.NewSpace(int(world.Width), int(world.Height), spaceCell, spaceCell),
	}

	for i, r := range layout.Fires {
		l.Fires = append(l.Fires, &Fire{Box: box(r)})
		l.addStatic(box(r), i, tagFire)
	}
	for i, b := range l.Ladders {
		l.addStatic(b, i, tagLadder)
	}

	return l
}

func (l *Level) addStatic(b core.Box, index int, tag string) {
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = index
	l.space.Add(obj)
}

// query returns the indices of tagged objects whose cells touch b, in
// layout order. The query box is padded by one unit so edge contacts are never
// dropped by the broad phase; callers confirm with an exact overlap test.
func (l *Level) query(b core.Box, tag string) []int {
	area := resolv.NewObject(b.X-1, b.Y-1, b.W+2, b.H+2)
	l.space.Add(area)
	defer l.space.Remove(area)

	check := area.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	indices := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}

// OnLadder reports whether b overlaps any ladder.
func (l *Level) OnLadder(b core.Box) bool {
	for _, i := range l.query(b, tagLadder) {
		if b.Intersects(l.Ladders[i]) {
			return true
		}
	}
	return false
}

// FireAt returns the index of the first fire b overlaps, or -1.
func (l *Level) FireAt(b core.Box) int {
	for _, i := range l.query(b, tagFire) {
		if b.Intersects(l.Fires[i].Box) {
			return i
		}
	}
	return -1
}

// tick advances the decorative animation of the level actors.
func (l *Level) tick() {
	for _, f := range l.Fires {
		f.tick()
	}
	l.Kong.tick()
	l.Goal.tick()
}

func box(r config.RectConfig) core.Box {
	return core.NewBox(r.X, r.Y, r.W, r.H)
}

func boxes(rs []config.RectConfig) []core.Box {
	out := make([]core.Box, len(rs))
	for i, r := range rs {
		out[i] = box(r)
	}
	return out
}
