// This file is part of Xray.
//
// Xray is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Xray is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Xray.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/trs-io/xray/console"
	"github.com/trs-io/xray/console/easyterm"
	"github.com/trs-io/xray/debugger"
	"github.com/trs-io/xray/debugger/breakpoints"
	"github.com/trs-io/xray/hardware"
	"github.com/trs-io/xray/logger"
	"github.com/trs-io/xray/modalflag"
	"github.com/trs-io/xray/outbound"
	"github.com/trs-io/xray/performance"
	"github.com/trs-io/xray/prefs"
	"github.com/trs-io/xray/statsview"
	"github.com/trs-io/xray/version"
	"github.com/trs-io/xray/virtualio"
	"github.com/trs-io/xray/virtualio/keys"
	"github.com/trs-io/xray/web"
	"golang.org/x/sync/errgroup"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		v, rev, _ := version.Version()
		fmt.Printf("%s %s (%s) protocol %s\n", version.ApplicationName, v, rev, version.Protocol)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	listen := md.AddString("listen", "", "address to listen on. overrides the web.address preference")
	romFile := md.AddString("rom", "", "ROM image to load. the builtin ROM is used if not specified")
	prefsOverride := md.AddString("prefs", "", "preferences to override, eg. \"debugger.updateInterval::500ms\"")
	useConsole := md.AddBool("console", false, "attach a terminal client to the virtual I/O channel")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write a graph of the breakpoint table to the file on exit")
	echo := md.AddBool("echo", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log(logger.Allow, "xray", "stats server not available in this build")
		}
	}

	var rom []uint8
	if *romFile != "" {
		rom, err = os.ReadFile(*romFile)
		if err != nil {
			return err
		}
	}

	machine, err := hardware.NewMachine(rom)
	if err != nil {
		return err
	}

	vi := virtualio.NewChannel(machine, machine, keys.NewMapping(keys.USLayout))
	machine.AttachPrinter(vi)

	out := outbound.NewChannel("debugger", defaultDebugSendWait)
	session := debugger.NewSession(machine, vi, out)

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "xray", "unused preferences: %s", unused)
			}
		}()
	}

	prf, err := newPreferences("")
	if err != nil {
		return err
	}
	if err := prf.wire(session, out, vi, machine); err != nil {
		return err
	}
	if err := prf.dsk.Load(true); err != nil {
		return err
	}

	address := prf.address.String()
	if *listen != "" {
		address = *listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	srv := web.NewServer(session, vi)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, address)
	})
	g.Go(func() error {
		return session.Run(ctx)
	})
	g.Go(func() error {
		return vi.Run(ctx)
	})
	g.Go(func() error {
		return prf.dsk.Watch(ctx)
	})

	if *useConsole {
		var term easyterm.Terminal
		if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		defer term.CleanUp()

		if geom := term.Geometry(); geom.Cols < hardware.VideoWidth || geom.Rows < hardware.VideoHeight {
			logger.Logf(logger.Allow, "console", "terminal is smaller than the screen (%dx%d)", geom.Cols, geom.Rows)
		}

		term.CBreakMode()
		con := console.NewConsole(vi, os.Stdout)

		// the console ending ends the program
		g.Go(func() error {
			defer stop()
			return con.Run(ctx, os.Stdin)
		})
	}

	v, _, _ := version.Version()
	logger.Logf(logger.Allow, "xray", "%s %s running", version.ApplicationName, v)

	err = g.Wait()

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, session.Breakpoints().List()); err != nil {
			logger.Log(logger.Allow, "xray", err)
		}
	}

	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	romFile := md.AddString("rom", "", "ROM image to load. the builtin ROM is used if not specified")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run without throttling")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM or NONE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	var rom []uint8
	if *romFile != "" {
		rom, err = os.ReadFile(*romFile)
		if err != nil {
			return err
		}
	}

	machine, err := hardware.NewMachine(rom)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, machine, *uncapped, *duration)
}

// writeMemviz writes a graph of the breakpoint list to the named file.
func writeMemviz(filename string, bps []breakpoints.Breakpoint) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}

	memviz.Map(f, &bps)

	if err := f.Close(); err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	return nil
}
