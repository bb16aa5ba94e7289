package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v2"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/macroman"
	"github.com/npillmayer/macroman/scanner"
	"github.com/npillmayer/macroman/scanner/lexmach"
	"github.com/npillmayer/macroman/table"
)

// Scanner engines selectable with flag -engine.
const (
	engineBinSearch = "binsearch"
	engineDFA       = "dfa"
	engineStream    = "stream"
)

// main() starts an interactive CLI ("M.REPL"), where users may enter lines
// of text. M.REPL will encode every line to MacRoman and print out the
// steps of the conversion.
//
// With flags -check, -dump or -i M.REPL performs a single task and exits.
//
func main() {
	// set up logging
	initDisplay()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	engine := flag.String("engine", engineBinSearch, "Scanner engine [binsearch|dfa|stream]")
	subst := flag.String("subst", "", "Substitute for unmappable characters (default: none)")
	check := flag.Bool("check", false, "Check the mapping table and print its fingerprint")
	dump := flag.Bool("dump", false, "Dump the mapping table as YAML")
	inf := flag.String("i", "", "Encode an input file")
	outf := flag.String("o", "", "Output file for -i (default: stdout)")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{}
	if err := intp.setEngine(*engine); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if err := intp.setSubst(*subst); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	switch {
	case *check:
		if err := checkTable(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	case *dump:
		if err := dumpTable(os.Stdout); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	case *inf != "":
		if err := intp.encodeFile(*inf, *outf); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}
	pterm.Info.Println("Welcome to MREPL") // colored welcome message
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// set up REPL
	repl, err := readline.New("mrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	engine    string
	subst     func(rune) (byte, bool) // nil for strict encoding
	substCode byte
	repl      *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or encodes a line of text.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.encode(line)
	}
	args := strings.Fields(line[1:])
	if len(args) == 0 {
		return false, nil
	}
	var err error
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "engine":
		if len(args) != 2 {
			err = fmt.Errorf("usage: :engine binsearch|dfa|stream")
		} else if err = intp.setEngine(args[1]); err == nil {
			pterm.Info.Println(fmt.Sprintf("engine is %s", intp.engine))
		}
	case "subst":
		arg := ""
		if len(args) > 1 {
			arg = args[1]
		}
		if err = intp.setSubst(arg); err == nil && intp.subst == nil {
			pterm.Info.Println("encoding strictly")
		} else if err == nil {
			pterm.Info.Println(fmt.Sprintf("substituting $%02X", intp.substCode))
		}
	case "sources":
		if len(args) != 2 {
			err = fmt.Errorf("usage: :sources <code>")
		} else {
			err = printSources(args[1])
		}
	default:
		err = fmt.Errorf("unknown command :%s", args[0])
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false, err
}

func (intp *Intp) setEngine(engine string) error {
	switch engine {
	case engineBinSearch, engineDFA, engineStream:
		intp.engine = engine
		return nil
	}
	return fmt.Errorf("unknown scanner engine %q", engine)
}

// setSubst sets the substitution for unmappable scalar values. s has to
// be encodable as exactly one MacRoman code; an empty s switches
// substitution off.
func (intp *Intp) setSubst(s string) error {
	if s == "" {
		intp.subst = nil
		return nil
	}
	e, ok := table.Lookup(s)
	if !ok || len(e.Source) != len(s) {
		return fmt.Errorf("substitute %q is not a single MacRoman character", s)
	}
	intp.substCode = e.Code
	intp.subst = scanner.Substitute(e.Code)
	return nil
}

// stepReader creates a scanner for input, using the currently selected
// engine.
func (intp *Intp) stepReader(input string) (scanner.StepReader, error) {
	switch intp.engine {
	case engineDFA:
		return lexmach.Encode(input)
	case engineStream:
		return scanner.NewStreamEncoder(strings.NewReader(input)), nil
	}
	return scanner.Encode(input), nil
}

func (intp *Intp) encode(input string) error {
	sr, err := intp.stepReader(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	steps := scanner.Collect(sr)
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("%+q", input)}}
	for _, step := range steps {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%-8v %-14q %v", step.Span(), input[step.Offset:step.Offset+step.Length], step.Outcome),
		})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	codes, err := scanner.Bytes(replay(steps), intp.subst)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Println(hex(codes))
	return nil
}

// encodeFile encodes the content of file inf with the streaming engine and
// writes the MacRoman result to file outf, or to stdout if outf is empty.
func (intp *Intp) encodeFile(inf, outf string) error {
	f, err := os.Open(inf)
	if err != nil {
		return err
	}
	defer f.Close()
	se := scanner.NewStreamEncoder(bufio.NewReader(f))
	codes, err := scanner.Bytes(se, intp.subst)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", inf, err)
	}
	if se.Err() != nil {
		return se.Err()
	}
	out := os.Stdout
	if outf != "" {
		if out, err = os.Create(outf); err != nil {
			return err
		}
		defer out.Close()
	}
	_, err = out.Write(codes)
	tracer().Infof("encoded %s to %d bytes", inf, len(codes))
	return err
}

// --- Table tools -----------------------------------------------------------

func checkTable() error {
	if err := table.Check(); err != nil {
		return err
	}
	fp, err := table.Fingerprint()
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("table ok: %d entries, %d codes", table.Len(), len(table.Codes())))
	pterm.Info.Println(fmt.Sprintf("fingerprint %s", fp))
	return nil
}

type yamlEntry struct {
	Source string `yaml:"source"`
	Code   string `yaml:"code"`
}

type yamlTable struct {
	Fingerprint string      `yaml:"fingerprint"`
	Entries     []yamlEntry `yaml:"entries"`
}

func dumpTable(w io.Writer) error {
	fp, err := table.Fingerprint()
	if err != nil {
		return err
	}
	t := yamlTable{Fingerprint: fp}
	for _, e := range table.Entries() {
		t.Entries = append(t.Entries, yamlEntry{
			Source: e.Source,
			Code:   fmt.Sprintf("$%02X", e.Code),
		})
	}
	out, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func printSources(arg string) error {
	code, err := parseCode(arg)
	if err != nil {
		return err
	}
	sources := table.Sources(code)
	if len(sources) == 0 {
		pterm.Info.Println(fmt.Sprintf("no sources for $%02X", code))
		return nil
	}
	for _, src := range sources {
		pterm.Info.Println(fmt.Sprintf("$%02X ← %+q", code, src))
	}
	return nil
}

// parseCode accepts a MacRoman code as $XX, 0xXX or decimal.
func parseCode(s string) (byte, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, fmt.Errorf("not a MacRoman code: %q", s)
	}
	return byte(n), nil
}

// --- Helpers ---------------------------------------------------------------

// stepList replays collected steps.
type stepList []macroman.Step

func (l *stepList) Next() (macroman.Step, bool) {
	if len(*l) == 0 {
		return macroman.Step{}, false
	}
	step := (*l)[0]
	*l = (*l)[1:]
	return step, true
}

func replay(steps []macroman.Step) scanner.StepReader {
	l := stepList(steps)
	return &l
}

func hex(codes []byte) string {
	var b strings.Builder
	for i, c := range codes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", c)
	}
	return b.String()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
