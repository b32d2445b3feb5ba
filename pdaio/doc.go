/*
Package pdaio reads pushdown automata from text and renders automata, configurations
and trace trails as text.

File Format

Definition files are line oriented. A '#' starts a comment reaching to the end of
the line; empty lines are ignored. Tokens are separated by white space. The first
six (non-empty) lines declare

    q0 q1          # 1. the states
    a b            # 2. the input alphabet, one character per token
    Z A            # 3. the stack alphabet
    q0             # 4. the initial state
    Z              # 5. the initial stack symbol
    q1             # 6. the accepting states

All following lines are transition rules, each made from five tokens:

    # from  input  top  to  push
      q0    a      Z    q0  A,Z
      q0    b      A    q1  ε

The push sequence is a comma separated list of stack symbols, written top-first.
The ε-token (configurable, default "ε") denotes a rule not consuming input when
used as input, and an empty push sequence (pop only) when used as push sequence.

Rendering

Rules, configurations and trails are rendered as tokenized lines, i.e. slices of
strings with fixed field positions, suitable for printing as tables.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pdaio

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pda.io'.
func tracer() tracing.Trace {
	return tracing.Select("pda.io")
}
