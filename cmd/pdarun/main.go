package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/npillmayer/pda/automaton/explore"
	"github.com/npillmayer/pda/pdaio"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() loads an automaton from a definition file and runs it against the
// inputs given on the command line. Without inputs it starts an interactive
// loop, reading one input per line.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	all := flag.Bool("all", false, "Report every accepting trail")
	accept := flag.String("accept", "final", "Acceptance by [final|empty|both]")
	maxSteps := flag.Int("max-steps", explore.DefaultMaxSteps, "Maximum number of configurations to explore")
	maxEps := flag.Int("max-epsilon", explore.DefaultMaxEpsilonRun, "Maximum number of consecutive ε-moves")
	epsilon := flag.String("epsilon", pdaio.DefaultEpsilon, "Token representing ε")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("pda.automaton").SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("pda.explore").SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("pda.io").SetTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if flag.NArg() < 1 {
		pterm.Error.Println("Usage: pdarun [flags] file [input ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	mode, err := explore.ParseAcceptanceMode(*accept)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	format := pdaio.NewFormat(pdaio.EpsilonToken(*epsilon))
	def, err := pdaio.LoadDefinition(flag.Arg(0), pdaio.EpsilonToken(*epsilon))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	def.Dump() // only visible in debug mode
	engine := explore.NewEngine(def, explore.AcceptBy(mode),
		explore.MaxSteps(*maxSteps), explore.MaxEpsilonRun(*maxEps))
	session := &Session{
		engine: engine,
		format: format,
		all:    *all,
	}
	pterm.Info.Println(fmt.Sprintf("Automaton %s: %d states, %d rules, accepting by %s",
		def.Name(), len(def.States()), def.RuleCount(), mode))
	//
	if flag.NArg() == 1 { // no inputs: go into interactive mode
		if err := session.REPL(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		return
	}
	rejected := 0
	for _, input := range flag.Args()[1:] {
		if input == format.Epsilon() {
			input = ""
		}
		if !session.Run(input) {
			rejected++
		}
	}
	if rejected > 0 {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Session holds everything needed to run inputs against an automaton.
type Session struct {
	engine *explore.Engine
	format *pdaio.Format
	all    bool // report every accepting trail
}

// Run runs the automaton against input and reports the result. It returns the
// verdict.
func (s *Session) Run(input string) bool {
	if s.all {
		return s.runAll(input)
	}
	result := s.engine.Run(input)
	s.reportStats()
	if result.Accepted {
		pterm.Success.Println(fmt.Sprintf("%s accepted", s.quote(input)))
	} else {
		pterm.Error.Println(fmt.Sprintf("%s rejected, longest trail explored:", s.quote(input)))
	}
	if err := s.format.WriteTrail(os.Stdout, result.Trail); err != nil {
		tracer().Errorf("%v", err)
	}
	return result.Accepted
}

func (s *Session) runAll(input string) bool {
	result := s.engine.RunAll(input)
	s.reportStats()
	if !result.Accepted {
		pterm.Error.Println(fmt.Sprintf("%s rejected", s.quote(input)))
		return false
	}
	pterm.Success.Println(fmt.Sprintf("%s accepted by %d trail(s)", s.quote(input), len(result.Trails)))
	root := pterm.NewTreeFromLeveledList(trailTree(result.Trails))
	pterm.DefaultTree.WithRoot(root).Render()
	return true
}

func (s *Session) reportStats() {
	stats := s.engine.Stats()
	tracer().Infof("%d steps, %d dead ends, %d pruned (%d by ε-bound), %d accepting",
		stats.Steps, stats.DeadEnds, stats.Pruned, stats.EpsPruned, stats.Accepting)
	if w := incompleteWarning(stats); w != "" {
		pterm.Warning.Println(w)
	}
}

// incompleteWarning explains why a verdict may be incomplete, if it may be.
func incompleteWarning(stats explore.Stats) string {
	switch {
	case !stats.Incomplete():
		return ""
	case stats.Exhausted:
		return "exploration budget exhausted, verdict may be incomplete"
	}
	return fmt.Sprintf("%d branch(es) cut by the ε-move bound, verdict may be incomplete (see -max-epsilon)",
		stats.EpsPruned)
}

func (s *Session) quote(input string) string {
	if input == "" {
		return s.format.Epsilon()
	}
	return fmt.Sprintf("%q", input)
}

// listRules prints the transition rules of the automaton as a table.
func (s *Session) listRules() {
	def := s.engine.Definition()
	if err := s.format.WriteTable(os.Stdout, s.format.TransitionLines(def)); err != nil {
		tracer().Errorf("%v", err)
	}
}

// trailTree merges trails into a leveled list. Trails are expected in exploration
// order, so each trail shares a prefix with its predecessor only.
func trailTree(trails []*explore.TraceTrail) pterm.LeveledList {
	var ll pterm.LeveledList
	var prev *explore.TraceTrail
	for _, tt := range trails {
		i := commonPrefix(prev, tt)
		for ; i < tt.Len(); i++ {
			ll = append(ll, pterm.LeveledListItem{
				Level: i,
				Text:  stepLabel(tt.Step(i)),
			})
		}
		prev = tt
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func commonPrefix(t1, t2 *explore.TraceTrail) int {
	n := 0
	for n < t1.Len() && n < t2.Len() {
		s1, s2 := t1.Step(n), t2.Step(n)
		if !s1.Configuration.Equals(s2.Configuration) || !s1.Rule.Equals(s2.Rule) {
			break
		}
		n++
	}
	return n
}

func stepLabel(step explore.Step) string {
	if step.Rule == nil {
		return step.Configuration.String()
	}
	return fmt.Sprintf("%s   by %s", step.Configuration, step.Rule)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
