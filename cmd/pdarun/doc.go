/*
Command pdarun runs pushdown automata, read from a definition file, against
input strings.

    pdarun [-trace level] [-all] [-accept final|empty|both]
           [-max-steps n] [-max-epsilon n] [-epsilon token] file [input ...]

For every input given on the command line pdarun prints the verdict (accepted
or rejected) and the trail leading to it. With flag -all, every accepting trail
is reported, rendered as a tree of configurations. Without inputs, pdarun enters
interactive mode and reads one input per line. Interactive mode understands the
commands

    :rules     list the transition rules of the automaton
    :all       toggle between reporting one or all accepting trails
    :quit      leave pdarun (as does <ctrl>D)

An empty input is entered as the ε-token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pda.cli'
func tracer() tracing.Trace {
	return tracing.Select("pda.cli")
}
