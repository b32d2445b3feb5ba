/*
Package pda is a toolbox for simulating pushdown automata.

A pushdown automaton (PDA) is a state machine augmented with a stack. Its
transitions are guarded by the current state, the next input character and
the symbol on top of the stack; firing a transition moves to a new state,
optionally consumes the input character, pops the top of stack and pushes
a sequence of stack symbols. As more than one transition may be applicable
at a time, a PDA is in general nondeterministic.

Package structure is as follows:

■ automaton: Package automaton implements the static definition of a PDA,
consisting of states, alphabets and transition rules, together with the
configurations ("status") a PDA passes through during a run.

■ automaton/explore: Package explore runs an automaton against an input string,
exploring the nondeterministic transition space and producing trace trails.

■ pdaio: Package pdaio reads automaton definitions from text files and renders
rules, configurations and trails as text.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pda
