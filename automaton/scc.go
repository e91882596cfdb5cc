package automaton

// SCCHooks parameterises the single Tarjan traversal that backs
// IsLangEmpty, GetReachableStates, GetUsefulStates and IsAcyclic, per
// spec.md §9 ("SCC traversal hooks"): rather than hard-coding each of
// those against a bespoke DFS, one correct-once traversal fires
// callbacks at state discovery, SCC discovery and successor
// traversal.
type SCCHooks struct {
	// OnDiscoverState fires the first time a state is visited.
	OnDiscoverState func(State)
	// OnSuccessor fires for every edge explored during the DFS,
	// before recursing. Returning false skips recursing into to (the
	// edge is still considered for low-link purposes only if to is
	// already on the stack).
	OnSuccessor func(from, to State) bool
	// OnDiscoverSCC fires once a strongly connected component is
	// fully popped off the stack. Returning false aborts the whole
	// traversal immediately (used by IsAcyclic to bail out on the
	// first non-trivial SCC).
	OnDiscoverSCC func(scc []State) bool
}

type tarjanState struct {
	index   map[State]int
	lowlink map[State]int
	onStack map[State]bool
	stack   []State
	counter int
	hooks   SCCHooks
	aborted bool
}

// RunTarjanSCC runs Tarjan's SCC algorithm starting from every state
// in starts (in the given order), visiting every state reachable from
// them via any transition (including epsilon), invoking hooks as
// documented on SCCHooks.
func (n *Nfa) RunTarjanSCC(starts []State, hooks SCCHooks) {
	ts := &tarjanState{
		index:   make(map[State]int),
		lowlink: make(map[State]int),
		onStack: make(map[State]bool),
		hooks:   hooks,
	}
	for _, s := range starts {
		if ts.aborted {
			return
		}
		if _, seen := ts.index[s]; !seen {
			n.tarjanVisit(s, ts)
		}
	}
}

func (n *Nfa) tarjanVisit(v State, ts *tarjanState) {
	ts.index[v] = ts.counter
	ts.lowlink[v] = ts.counter
	ts.counter++
	ts.stack = append(ts.stack, v)
	ts.onStack[v] = true
	if ts.hooks.OnDiscoverState != nil {
		ts.hooks.OnDiscoverState(v)
	}

	for _, mv := range n.Delta.StatePost(v).Moves() {
		if ts.aborted {
			return
		}
		w := mv.Target
		recurse := true
		if ts.hooks.OnSuccessor != nil {
			recurse = ts.hooks.OnSuccessor(v, w)
		}
		if _, seen := ts.index[w]; !seen {
			if recurse {
				n.tarjanVisit(w, ts)
				if ts.aborted {
					return
				}
				if ts.lowlink[w] < ts.lowlink[v] {
					ts.lowlink[v] = ts.lowlink[w]
				}
			}
		} else if ts.onStack[w] {
			if ts.index[w] < ts.lowlink[v] {
				ts.lowlink[v] = ts.index[w]
			}
		}
	}

	if ts.lowlink[v] == ts.index[v] {
		var scc []State
		for {
			w := ts.stack[len(ts.stack)-1]
			ts.stack = ts.stack[:len(ts.stack)-1]
			ts.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		if ts.hooks.OnDiscoverSCC != nil && !ts.hooks.OnDiscoverSCC(scc) {
			ts.aborted = true
		}
	}
}

// GetReachableStates returns a boolean vector marking every state
// reachable from some initial state.
func (n *Nfa) GetReachableStates() []bool {
	reachable := make([]bool, n.NumOfStates())
	n.RunTarjanSCC(n.Initial.SortedValues(), SCCHooks{
		OnDiscoverState: func(s State) { reachable[s] = true },
	})
	return reachable
}

// reverseEdges builds the reverse adjacency used for co-reachability.
func (n *Nfa) reverseEdges() map[State][]State {
	rev := make(map[State][]State)
	it := n.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		rev[t.Target] = append(rev[t.Target], t.Source)
	}
	return rev
}

// GetUsefulStates returns a boolean vector marking states that are
// both reachable from an initial state and co-reachable to a final
// state, computed as reachable(A) ∩ co_reachable(A) per spec.md §8.
func (n *Nfa) GetUsefulStates() []bool {
	reachable := n.GetReachableStates()

	coReachable := make([]bool, n.NumOfStates())
	rev := n.reverseEdges()
	var stack []State
	n.Final.ForEach(func(s State) {
		if int(s) < len(coReachable) && !coReachable[s] {
			coReachable[s] = true
			stack = append(stack, s)
		}
	})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !coReachable[p] {
				coReachable[p] = true
				stack = append(stack, p)
			}
		}
	}

	useful := make([]bool, n.NumOfStates())
	for s := range useful {
		useful[s] = reachable[s] && coReachable[s]
	}
	return useful
}

// IsAcyclic reports whether the automaton's transition graph (all
// transitions, including epsilon) has no non-trivial strongly
// connected component: no cycle and no self-loop.
func (n *Nfa) IsAcyclic() bool {
	acyclic := true
	allStates := make([]State, n.NumOfStates())
	for i := range allStates {
		allStates[i] = State(i)
	}
	n.RunTarjanSCC(allStates, SCCHooks{
		OnDiscoverSCC: func(scc []State) bool {
			if len(scc) > 1 {
				acyclic = false
				return false
			}
			// a single-state SCC is still non-trivial if it has a
			// self-loop
			s := scc[0]
			for _, mv := range n.Delta.StatePost(s).Moves() {
				if mv.Target == s {
					acyclic = false
					return false
				}
			}
			return true
		},
	})
	return acyclic
}

// IsLangEmpty reports whether the automaton accepts no word, and when
// it does not, a counter-example word and the state path it visits.
// It runs the shared SCC traversal, looking for any initial state that
// can reach a final state.
func (n *Nfa) IsLangEmpty() (empty bool, word []Symbol, path []State) {
	reachableFinal := false
	parent := make(map[State]parentEdge)
	var foundFinal State
	n.RunTarjanSCC(n.Initial.SortedValues(), SCCHooks{
		OnDiscoverState: func(s State) {
			if !reachableFinal && n.Final.Contains(s) {
				reachableFinal = true
				foundFinal = s
			}
		},
		OnSuccessor: func(from, to State) bool {
			if _, seen := parent[to]; !seen && !n.Initial.Contains(to) {
				parent[to] = parentEdge{From: from, To: to}
			}
			return true
		},
	})
	if !reachableFinal {
		return true, nil, nil
	}
	word, path = reconstructPath(n, parent, foundFinal)
	return false, word, path
}

// parentEdge records a discovered (from,to) edge for path
// reconstruction.
type parentEdge struct {
	From, To State
}

// reconstructPath walks parent back-pointers from target to some
// initial state, then reads off the symbol of each hop from delta.
func reconstructPath(n *Nfa, parent map[State]parentEdge, target State) ([]Symbol, []State) {
	var path []State
	cur := target
	path = append(path, cur)
	for !n.Initial.Contains(cur) {
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p.From
		path = append(path, cur)
	}
	// reverse path to start-to-end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	var word []Symbol
	for i := 0; i+1 < len(path); i++ {
		src, tgt := path[i], path[i+1]
		for _, mv := range n.Delta.StatePost(src).Moves() {
			if mv.Target == tgt {
				word = append(word, mv.Symbol)
				break
			}
		}
	}
	return word, path
}
