// Command umvm runs Universal Machine program images.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/cmoultrie/umvm/config"
	"github.com/cmoultrie/umvm/loader"
	"github.com/cmoultrie/umvm/vm"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("umvm", flag.ContinueOnError)
	var (
		showVersion = fs.Bool("version", false, "Show version information")
		configPath  = fs.String("config", "", "Path to config file (default: platform config directory)")
		maxCycles   = fs.Uint64("max-cycles", 0, "Maximum instructions before halting with an error (0 = use the config's max_cycles, unlimited by default)")
		enableTrace = fs.Bool("trace", false, "Enable execution trace")
		traceFile   = fs.String("trace-file", "", "Trace output file (default: the config's trace output_file, else trace.log)")
		verbose     = fs.Bool("verbose", false, "Print a diagnostic summary after the run")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("umvm %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("built: %s\n", Date)
		}
		return 0
	}

	rest := fs.Args()
	if len(rest) > 1 {
		fmt.Fprintln(os.Stderr, "usage: umvm [flags] [program]")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "umvm: %v\n", err)
		return 1
	}

	var words []uint32
	if len(rest) == 1 {
		words, err = loader.LoadFile(rest[0])
	} else {
		words, err = loader.LoadStdin()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "umvm: %v\n", err)
		return 1
	}

	machine := vm.NewVM()
	machine.Boot(words)

	if cfg.IO.OutputBufferSize > 0 {
		machine.SetOutput(bufio.NewWriterSize(os.Stdout, cfg.IO.OutputBufferSize))
	}

	machine.MaxCycles = cfg.Execution.MaxCycles
	if *maxCycles != 0 {
		machine.MaxCycles = *maxCycles
	}

	if *enableTrace || cfg.Trace.Enabled {
		machine.Trace = vm.NewInstructionTrace()
	}

	runErr := machine.Run()

	if machine.Trace != nil {
		if err := writeTrace(machine.Trace, *traceFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "umvm: failed to write trace: %v\n", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "umvm: %v\n", runErr)
		return 1
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "umvm: halted cleanly after %d cycles\n", machine.Cycles)
	}

	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func writeTrace(trace *vm.InstructionTrace, explicitPath string, cfg *config.Config) error {
	path := explicitPath
	if path == "" {
		path = cfg.Trace.OutputFile
	}
	if path == "" {
		path = "trace.log"
	}

	f, err := os.Create(path) // #nosec G304 -- operator-specified trace output path
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer f.Close()

	_, err = trace.WriteTo(f)
	return err
}
