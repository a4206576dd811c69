// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/hardware/preferences"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/paths"
	"github.com/jetsetilly/gopher2a03/prefs"
	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

const prefsFile = "preferences"

// number of log entries shown after a failed run
const errorLogTail = 5

func main() {
	// ctrl-c ends the emulation at the next instruction boundary
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Get())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// options for the RUN mode that apply to every file
type runOptions struct {
	format string
	origin uint16
	entry  string
	spec   clocks.Spec
	limit  uint64
	trace  io.Writer
	memviz string
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	format := md.AddString("format", cartridgeloader.FormatAuto, "file format: AUTO, RAW, INES")
	origin := md.AddString("origin", "0x8000", "load address of RAW files")
	entry := md.AddString("entry", "", "address to begin execution (default: reset vector)")
	nmi := md.AddString("nmi", "", "pulse NMI once per frame: NTSC, PAL, DENDY")
	limit := md.AddUint64("cycles", 100000000, "maximum number of cycles to run (zero for no limit)")
	trace := md.AddBool("trace", false, "print trace line for every instruction (single file only)")
	memvizFile := md.AddString("memviz", "", "write a graph of the CPU structure to file (single file only)")
	stats := md.AddBool("statsview", false, "run stats server")
	prefsPath := md.AddString("prefs", "", "hardware preferences file (default: user config directory)")
	overrides := md.AddString("override", "", "override preferences: key::value; key::value")
	log := md.AddBool("log", false, "echo debugging log to output")

	md.AdditionalHelp("Each file is run on its own emulated console until the program traps\n(an instruction that leaves the PC unchanged) or the cycle limit is reached.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return fmt.Errorf("program file required for %s mode", md)
	}
	if len(files) > 1 && (*trace || *memvizFile != "") {
		return fmt.Errorf("-trace and -memviz can only be used with a single file")
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	opts := runOptions{
		format: *format,
		entry:  *entry,
		limit:  *limit,
		memviz: *memvizFile,
	}

	o, err := strconv.ParseUint(*origin, 0, 16)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	opts.origin = uint16(o)

	if *nmi != "" {
		opts.spec = clocks.Spec(strings.ToUpper(*nmi))
		switch opts.spec {
		case clocks.SpecNTSC, clocks.SpecPAL, clocks.SpecDendy:
		default:
			return fmt.Errorf("unknown console specification (%s)", *nmi)
		}
	}

	if *trace {
		opts.trace = output
	}

	if *overrides != "" {
		prefs.PushCommandLineStack(*overrides)
		defer prefs.PopCommandLineStack()
	}

	pth := *prefsPath
	if pth == "" {
		pth, err = paths.ResourcePath("", prefsFile)
		if err != nil {
			return err
		}
	}

	// each console has its own preferences instance. they are created before
	// any console starts running
	consolePrefs := make([]*preferences.Preferences, len(files))
	for i := range files {
		consolePrefs[i], err = preferences.NewPreferences(pth)
		if err != nil {
			return err
		}
	}

	results := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			r, err := runFile(ctx, consolePrefs[i], f, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(f), err)
			}
			results[i] = r
			return nil
		})
	}
	err = g.Wait()

	for _, r := range results {
		if r != "" {
			fmt.Fprintln(output, r)
		}
	}

	if err != nil && !*log {
		logger.Tail(output, errorLogTail)
	}

	return err
}

// load the file and create the memory implementation appropriate for the
// file format
func loadMemory(filename string, opts runOptions) (cpubus.Memory, error) {
	cl := cartridgeloader.NewLoader(filename, opts.format)
	if err := cl.Load(); err != nil {
		return nil, err
	}

	switch cl.Format {
	case cartridgeloader.FormatINES:
		ines, err := cartridgeloader.ParseINES(cl.Data)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "gopher2a03", "%s: %s", cl.ShortName(), ines)
		for _, l := range strings.Split(strings.TrimSpace(memorymap.Summary()), "\n") {
			logger.Log(logger.Allow, "memory", l)
		}
		return memory.NewNES(ines.PRG)

	case cartridgeloader.FormatRaw:
		ram := memory.NewRAM()
		if err := ram.Load(opts.origin, cl.Data); err != nil {
			return nil, err
		}

		// raw data that doesn't cover the reset vector starts at the origin
		if ram.Read(cpubus.Reset) == 0 && ram.Read(cpubus.Reset+1) == 0 {
			ram.SetVector(cpubus.Reset, opts.origin)
		}
		return ram, nil
	}

	return nil, curated.Errorf("gopher2a03: unsupported file format (%s)", cl.Format)
}

func runFile(ctx context.Context, p *preferences.Preferences, filename string, opts runOptions) (string, error) {
	mem, err := loadMemory(filename, opts)
	if err != nil {
		return "", err
	}

	con, err := hardware.NewConsole(p, mem)
	if err != nil {
		return "", err
	}

	if opts.spec != "" {
		con.AttachFrameTimer(opts.spec)
	}

	err = con.PowerOn()
	if err != nil {
		return "", err
	}

	if opts.entry != "" {
		e, err := strconv.ParseUint(opts.entry, 0, 16)
		if err != nil {
			return "", fmt.Errorf("entry: %w", err)
		}
		err = con.CPU.LoadPC(uint16(e))
		if err != nil {
			return "", err
		}
	}

	var trapped bool
	var performanceFilter int

	continueCheck := func() (hardware.RunState, error) {
		if opts.trace != nil {
			fmt.Fprintln(opts.trace, con.CPU.TraceLine())
		}

		if con.IsTrapped() {
			trapped = true
			return hardware.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			if err := ctx.Err(); err != nil {
				return hardware.Ending, err
			}
		}

		return hardware.Running, nil
	}

	if opts.limit == 0 {
		err = con.Run(continueCheck)
	} else {
		err = con.RunForCycles(opts.limit, continueCheck)
	}
	if err != nil {
		return "", err
	}

	if opts.memviz != "" {
		f, err := os.Create(opts.memviz)
		if err != nil {
			return "", err
		}
		memviz.Map(f, con.CPU)
		if err := f.Close(); err != nil {
			return "", err
		}
	}

	s := strings.Builder{}
	s.WriteString(filepath.Base(filename))
	if trapped {
		s.WriteString(fmt.Sprintf(": trapped at $%04X", con.CPU.PC.Address()))
	} else {
		s.WriteString(fmt.Sprintf(": cycle limit reached at $%04X", con.CPU.PC.Address()))
	}
	s.WriteString(fmt.Sprintf(" after %d cycles", con.CPU.TotalCycles))
	if con.Frame != nil {
		s.WriteString(fmt.Sprintf(" (%d frames)", con.Frame.Frames()))
	}

	return s.String(), nil
}
