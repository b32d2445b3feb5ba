package explore

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/pda/automaton"
)

// Engine runs an automaton against input strings. Create one with NewEngine.
// An engine may be used for any number of runs, but not concurrently.
type Engine struct {
	def        *automaton.Definition
	mode       AcceptanceMode
	maxSteps   int
	maxEpsilon int
	stats      Stats
}

// Stats collects statistics about the last run of an engine.
type Stats struct {
	Steps     int  // configurations expanded
	DeadEnds  int  // configurations without applicable rules
	Pruned    int  // branches cut by cycle detection or the ε-move bound
	EpsPruned int  // branches cut by the ε-move bound alone
	Accepting int  // accepting configurations found
	Exhausted bool // MaxSteps has been hit
}

// Incomplete is true if a rejection may be caused by a termination guard
// rather than by the automaton: the step budget ran out, or the ε-move bound
// cut a branch which is not known to be a cycle.
func (s Stats) Incomplete() bool {
	return s.Exhausted || s.EpsPruned > 0
}

// Result is the outcome of Run.
type Result struct {
	Accepted bool
	Trail    *TraceTrail // first accepting trail, or longest dead-end trail
}

// AllResult is the outcome of RunAll.
type AllResult struct {
	Accepted bool
	Trails   []*TraceTrail // every accepting trail, in exploration order
}

// NewEngine creates an engine for an automaton definition.
func NewEngine(def *automaton.Definition, opts ...Option) *Engine {
	e := &Engine{
		def:        def,
		mode:       FinalState,
		maxSteps:   DefaultMaxSteps,
		maxEpsilon: DefaultMaxEpsilonRun,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run is a shortcut for NewEngine(def, opts...).Run(input).
func Run(def *automaton.Definition, input string, opts ...Option) Result {
	return NewEngine(def, opts...).Run(input)
}

// RunAll is a shortcut for NewEngine(def, opts...).RunAll(input).
func RunAll(def *automaton.Definition, input string, opts ...Option) AllResult {
	return NewEngine(def, opts...).RunAll(input)
}

// Definition returns the automaton an engine runs.
func (e *Engine) Definition() *automaton.Definition {
	return e.def
}

// Stats returns statistics about the last run.
func (e *Engine) Stats() Stats {
	return e.stats
}

// IsAccepting checks if c is an accepting configuration under the engine's
// acceptance criterion.
func (e *Engine) IsAccepting(c automaton.Configuration) bool {
	if !c.InputDone() {
		return false
	}
	switch e.mode {
	case EmptyStack:
		return e.stackEmpty(c)
	case FinalStateAndEmptyStack:
		return e.def.IsAccepting(c.State()) && e.stackEmpty(c)
	}
	return e.def.IsAccepting(c.State())
}

// stackEmpty is true for a stack with no symbols or only the initial stack symbol.
func (e *Engine) stackEmpty(c automaton.Configuration) bool {
	stack := c.Stack()
	if stack.IsEmpty() {
		return true
	}
	tos, _ := stack.Top()
	return stack.Depth() == 1 && tos == e.def.InitialStackSymbol()
}

// Run decides if the automaton accepts input. It returns the first accepting trail
// found, or, if input is rejected, the longest dead-end trail explored (the
// first one found among trails of equal length). If no dead end has been reached,
// because every branch ended in a pruned cycle or the step budget ran out, the
// trail consists of the initial configuration only.
//
// Configurations already explored are not explored again, unless reached with a
// shorter run of ε-moves.
func (e *Engine) Run(input string) Result {
	e.stats = Stats{}
	tracer().Debugf("=== run %s on %q ===================", e.def.Name(), input)
	visited := make(map[string]int) // fingerprint ➞ shortest ε-run seen
	root := rootNode(e.def.InitialConfiguration(input))
	visited[root.conf.Fingerprint()] = 0
	var longest *trailNode
	accepted := e.search(root, func(*trailNode) bool {
		return true // stop at the first accepting configuration
	}, func(node *trailNode) {
		if longest == nil || node.depth > longest.depth {
			longest = node
		}
	}, func(parent, child *trailNode) bool {
		fp := child.conf.Fingerprint()
		if run, seen := visited[fp]; seen && run <= child.epsrun {
			return false
		}
		visited[fp] = child.epsrun
		return true
	})
	if accepted != nil {
		tracer().Infof("input %q accepted after %d steps", input, e.stats.Steps)
		return Result{Accepted: true, Trail: accepted.trail(true)}
	}
	tracer().Infof("input %q rejected after %d steps", input, e.stats.Steps)
	if longest == nil { // no dead end reached
		longest = root
	}
	return Result{Accepted: false, Trail: longest.trail(false)}
}

// RunAll explores every branch and collects all accepting trails. Cycle detection
// is restricted to each branch itself, so distinct branches passing through a common
// configuration are reported separately.
func (e *Engine) RunAll(input string) AllResult {
	e.stats = Stats{}
	tracer().Debugf("=== run all %s on %q ===============", e.def.Name(), input)
	var trails []*TraceTrail
	root := rootNode(e.def.InitialConfiguration(input))
	e.search(root, func(node *trailNode) bool {
		trails = append(trails, node.trail(true))
		return false
	}, nil, func(parent, child *trailNode) bool {
		return !parent.onPath(child.conf)
	})
	tracer().Infof("input %q: %d accepting trail(s) after %d steps", input, len(trails), e.stats.Steps)
	return AllResult{Accepted: len(trails) > 0, Trails: trails}
}

// search is a depth-first exploration of the configuration tree below root,
// driven by an explicit worklist.
//
// onAccept is called for accepting configurations; if it returns true the search stops
// and returns the accepting node. onDeadEnd is called for nodes without applicable
// rules (may be nil); nodes whose successors have all been pruned are not dead ends.
// admit decides if a child is explored.
func (e *Engine) search(root *trailNode, onAccept func(*trailNode) bool,
	onDeadEnd func(*trailNode), admit func(parent, child *trailNode) bool) *trailNode {
	//
	worklist := arraystack.New()
	worklist.Push(root)
	for !worklist.Empty() {
		if e.stats.Steps >= e.maxSteps {
			tracer().Infof("exploration budget of %d steps exhausted", e.maxSteps)
			e.stats.Exhausted = true
			return nil
		}
		x, _ := worklist.Pop()
		node := x.(*trailNode)
		e.stats.Steps++
		tracer().Debugf("[%5d] %s", e.stats.Steps, node.conf)
		if e.IsAccepting(node.conf) {
			e.stats.Accepting++
			if onAccept(node) {
				return node
			}
			continue
		}
		rules := e.def.Applicable(node.conf)
		for i := len(rules) - 1; i >= 0; i-- { // push in reverse, so rules[0] is popped first
			next, _ := rules[i].Apply(node.conf)
			child := node.extend(rules[i], next)
			if child.epsrun > e.maxEpsilon {
				tracer().Debugf("        pruning %s: too many ε-moves", next)
				e.stats.Pruned++
				e.stats.EpsPruned++
				continue
			}
			if !admit(node, child) {
				tracer().Debugf("        pruning %s: already explored", next)
				e.stats.Pruned++
				continue
			}
			worklist.Push(child)
		}
		if len(rules) == 0 {
			e.stats.DeadEnds++
			if onDeadEnd != nil {
				onDeadEnd(node)
			}
		}
	}
	return nil
}
