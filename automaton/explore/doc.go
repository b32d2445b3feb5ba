/*
Package explore runs pushdown automata. As automata may be nondeterministic, a run
is a search over the tree of configurations reachable from the initial
configuration. The engine explores this tree depth-first, branching over the
applicable rules in the order imposed by automaton.CompareRules. Re-running an
automaton on the same input therefore always explores the same branches in the
same order.

Usage

	def, err := b.Definition()            // b is an automaton.Builder
	engine := explore.NewEngine(def)
	result := engine.Run("aabb")
	if result.Accepted {
	    fmt.Println(result.Trail)          // path from the initial to an accepting configuration
	}

RunAll continues the search after the first success and collects every accepting
trail.

Acceptance

A configuration is accepting if its input has been consumed completely and it
satisfies the acceptance criterion. The default criterion is acceptance by final
state, meaning the current state is an accepting state, regardless of the stack.
Option AcceptBy selects acceptance by empty stack, or by both. A stack counts
as empty if it holds no symbol at all or just the initial stack symbol.

Termination

Rules not consuming input (ε-rules) may loop forever, possibly growing the stack.
The engine guarantees termination by three guards:

■ cycle detection: a branch re-entering a configuration already explored is pruned

■ MaxEpsilonRun: a branch is pruned after a run of more consecutive ε-moves

■ MaxSteps: the whole search stops after expanding a number of configurations

Pruned branches are treated as non-accepting. The guards never cause an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package explore

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pda.explore'.
func tracer() tracing.Trace {
	return tracing.Select("pda.explore")
}
