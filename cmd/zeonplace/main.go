// Command zeonplace runs a configured script of placement/legalization
// passes against a chip database loaded from LEF/DEF, writing the result
// back out to DEF.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/pprof"
	"sort"

	"github.com/google/pprof/profile"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/zeonplace/config"
	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/io/lefdef"
	"github.com/sarchlab/zeonplace/pass"
	"github.com/sarchlab/zeonplace/zplog"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	lefPath := flag.String("lef", "", "path to an input LEF file (technology + cell library)")
	defIn := flag.String("def", "", "path to an input DEF file (design + instances)")
	defOut := flag.String("def-out", "", "path to write the resulting DEF file")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this path")
	memProfile := flag.String("memprofile", "", "write a heap profile to this path")
	continueOnFailure := flag.Bool("continue-on-failure", false, "run every scripted pass even after one fails")
	flag.Parse()

	log := zplog.Default()

	if *configPath == "" || *lefPath == "" || *defIn == "" {
		log.Errorf("usage: zeonplace -config run.yaml -lef tech.lef -def design.def [-def-out out.def]")
		atexit.Exit(2)
		return
	}

	// Profiling is started/stopped inline rather than with defer: the
	// final atexit.Exit below calls os.Exit, which skips deferred calls
	// entirely, so StopCPUProfile must run before we ever reach it.
	var cpuFile *os.File
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Errorf("creating cpu profile: %v", err)
			atexit.Exit(1)
			return
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Errorf("starting cpu profile: %v", err)
			f.Close()
			atexit.Exit(1)
			return
		}
		cpuFile = f
	}

	code := run(*configPath, *lefPath, *defIn, *defOut, *continueOnFailure, log)

	if cpuFile != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		reportTopFunctions(*cpuProfile, log)
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Errorf("creating mem profile: %v", err)
		} else {
			_ = pprof.WriteHeapProfile(f)
			f.Close()
			reportTopFunctions(*memProfile, log)
		}
	}

	atexit.Exit(code)
}

func run(configPath, lefPath, defPath, defOutPath string, continueOnFailure bool, log *zplog.Logger) int {
	rc, err := config.LoadFromYAML(configPath)
	if err != nil {
		log.Errorf("loading config: %v", err)
		return 1
	}

	design := db.NewDesign(rc.Name)
	rc.Floorplan.ApplyTo(design)

	lefFile, err := os.Open(lefPath)
	if err != nil {
		log.Errorf("opening LEF: %v", err)
		return 1
	}
	defer lefFile.Close()
	if err := lefdef.ReadLEF(lefFile, design.TechLib, design.CellLib); err != nil {
		log.Errorf("reading LEF: %v", err)
		return 1
	}

	topName, err := firstModuleCellName(design)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	if !design.SetTopModule(topName) {
		log.Errorf("setting top module %q", topName)
		return 1
	}
	top, _ := design.TopModule()

	defFile, err := os.Open(defPath)
	if err != nil {
		log.Errorf("opening DEF: %v", err)
		return 1
	}
	defer defFile.Close()
	if err := lefdef.ReadDEF(defFile, top); err != nil {
		log.Errorf("reading DEF: %v", err)
		return 1
	}

	driver := pass.NewDriver()
	driver.Log = log
	driver.ContinueOnFailure = continueOnFailure

	if rc.History != "" {
		h, err := pass.OpenHistory(rc.History)
		if err != nil {
			log.Errorf("opening run history: %v", err)
			return 1
		}
		defer h.Close()
		driver.History = h
	}

	if mon, err := pass.NewMonitor(); err == nil {
		driver.Monitor = mon
	}

	if rc.DebugAddr != "" {
		srv := pass.NewServer(design, top)
		driver.DebugServer = srv
		go func() {
			if err := http.ListenAndServe(rc.DebugAddr, srv.Router()); err != nil {
				log.Warningf("debug server exited: %v", err)
			}
		}()
	}

	report, runErr := driver.Run(design, top, rc.Passes)
	report.WriteReport(os.Stdout)

	if defOutPath != "" {
		outFile, err := os.Create(defOutPath)
		if err != nil {
			log.Errorf("creating output DEF: %v", err)
			return 1
		}
		defer outFile.Close()
		if err := lefdef.WriteDEF(outFile, design, top); err != nil {
			log.Errorf("writing output DEF: %v", err)
			return 1
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}

// firstModuleCellName finds the one module-class cell in the library to
// use as the design's top, since LEF/DEF carry no top-module marker of
// their own.
func firstModuleCellName(design *db.Design) (string, error) {
	var name string
	design.CellLib.Cells.Each(func(key container.Key, c *db.Cell) bool {
		if c.IsModule() {
			if n, ok := design.CellLib.Cells.NameOf(key); ok {
				name = n
			}
			return false
		}
		return true
	})
	if name == "" {
		return "", fmt.Errorf("no module-class (netlist-bearing) cell found in the LEF library")
	}
	return name, nil
}

// reportTopFunctions re-opens a just-written pprof profile and prints the
// ten functions accounting for the most sample value, a human-readable
// top-N summary over the raw file runtime/pprof wrote.
func reportTopFunctions(path string, log *zplog.Logger) {
	f, err := os.Open(path)
	if err != nil {
		log.Warningf("reopening profile %s: %v", path, err)
		return
	}
	defer f.Close()

	p, err := profile.Parse(f)
	if err != nil {
		log.Warningf("parsing profile %s: %v", path, err)
		return
	}

	totals := make(map[string]int64)
	for _, sample := range p.Sample {
		if len(sample.Value) == 0 || len(sample.Location) == 0 {
			continue
		}
		loc := sample.Location[0]
		if len(loc.Line) == 0 || loc.Line[0].Function == nil {
			continue
		}
		totals[loc.Line[0].Function.Name] += sample.Value[0]
	}

	type entry struct {
		name  string
		value int64
	}
	entries := make([]entry, 0, len(totals))
	for name, value := range totals {
		entries = append(entries, entry{name, value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].value > entries[j].value })

	log.Infof("top functions in %s:", path)
	for i, e := range entries {
		if i >= 10 {
			break
		}
		log.Infof("  %8d  %s", e.value, e.name)
	}
}
