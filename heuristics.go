package rubiks

import "fmt"

const (
	// CornerStateCount is the number of distinct 2x2x2 configurations with
	// one corner cubie held fixed: 7! * 3^6.
	CornerStateCount = 3674160

	// CornerGodsNumber is the maximum quarter-turn distance of any 2x2x2
	// configuration from solved.
	CornerGodsNumber = 14
)

// HeuristicsTables holds precomputed pattern databases used as admissible
// lower bounds during search. Tables are read-only once built, so a single
// instance can be shared by any number of concurrent solvers.
type HeuristicsTables struct {
	// corners maps the canonical key of a 2x2x2 state to its exact
	// quarter-turn distance from solved.
	corners map[string]uint8
}

// NewHeuristicsTables returns an empty table set.
func NewHeuristicsTables() *HeuristicsTables {
	return &HeuristicsTables{}
}

// BuildCornerTable runs a breadth-first search over the whole 2x2x2 state
// space, recording each state's distance from solved. Only turns with a
// positive axis index are expanded, which holds the down-back-right cubie
// fixed; every state the search visits therefore already sits in the normal
// orientation and can be keyed on its raw facelet bytes. The search must
// visit exactly CornerStateCount states, all within CornerGodsNumber turns;
// anything else means the turn model is broken and panics.
func (h *HeuristicsTables) BuildCornerTable() {
	table := make(map[string]uint8, 4000000)

	solved := Solved(2)
	allTurns := solved.AllTurns()
	posTurns := make([]Turn, 0, len(allTurns))
	for _, t := range allTurns {
		if t.ToAxisBased().Index > 0 {
			posTurns = append(posTurns, t)
		}
	}

	type entry struct {
		state *CubeState
		depth uint8
	}
	queue := make([]entry, 0, CornerStateCount/2)
	queue = append(queue, entry{state: solved, depth: 0})

	numPos := 0
	for head := 0; head < len(queue); head++ {
		e := queue[head]
		queue[head] = entry{} // release the state for collection
		key := e.state.rawKey()
		if _, ok := table[key]; ok {
			continue
		}

		if e.depth < CornerGodsNumber {
			for _, t := range posTurns {
				next := e.state.Clone()
				next.Turn(t)
				if _, ok := table[next.rawKey()]; !ok {
					queue = append(queue, entry{state: next, depth: e.depth + 1})
				}
			}
		}

		table[key] = e.depth
		numPos++
	}

	if numPos != CornerStateCount {
		panic(fmt.Sprintf("rubiks: corner table BFS found %d states, want %d", numPos, CornerStateCount))
	}
	h.corners = table
}

// HasCornerTable reports whether the corner pattern database is loaded.
func (h *HeuristicsTables) HasCornerTable() bool {
	return h != nil && h.corners != nil
}

// CornerDistance looks up the exact solve distance of a 2x2x2 state. The
// state is canonicalized before the lookup, so any whole-cube rotation of a
// reachable state resolves. The second return is false when no table is
// loaded or the state is not a reachable 2x2x2 configuration.
func (h *HeuristicsTables) CornerDistance(state *CubeState) (int, bool) {
	if !h.HasCornerTable() || state.Size() != 2 {
		return 0, false
	}
	d, ok := h.corners[state.Key()]
	return int(d), ok
}

// CornerTable exposes the raw corner table for persistence. Callers must not
// mutate it.
func (h *HeuristicsTables) CornerTable() map[string]uint8 {
	return h.corners
}

// SetCornerTable installs a previously persisted corner table. A table of the
// wrong cardinality is corrupt and panics.
func (h *HeuristicsTables) SetCornerTable(table map[string]uint8) {
	if len(table) != CornerStateCount {
		panic(fmt.Sprintf("rubiks: corner table has %d states, want %d", len(table), CornerStateCount))
	}
	h.corners = table
}

// BuildEdgeTable would build an edge-cubie pattern database for large cubes.
// Not implemented.
func (h *HeuristicsTables) BuildEdgeTable() {
	panic("rubiks: edge heuristics table not implemented")
}
