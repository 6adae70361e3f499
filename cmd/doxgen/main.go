package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/marwest/doxgen/internal/command"
	"github.com/marwest/doxgen/internal/config"
	"github.com/marwest/doxgen/internal/diag"
	"github.com/marwest/doxgen/internal/editor"
	"github.com/marwest/doxgen/internal/header"
	"github.com/marwest/doxgen/internal/scanner"
	"github.com/marwest/doxgen/internal/server"
	"github.com/marwest/doxgen/internal/signature"
)

func main() {
	// Define command-line flags
	var (
		lineFlag    = flag.Int("line", 0, "1-based line of the signature to document (0 documents every undocumented signature)")
		writeFlag   = flag.Bool("write", false, "Rewrite files in place instead of printing to stdout")
		serveFlag   = flag.Bool("serve", false, "Serve the header API over HTTP for editor integrations")
		addrFlag    = flag.String("addr", "", "Listen address for -serve (overrides the config file)")
		configFlag  = flag.String("config", "", "Path to an optional YAML config file")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Doxgen Function Header Generator\n")
		fmt.Fprintf(os.Stderr, "Inserts Doxygen-style documentation headers above C++ function signatures.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  file...            Source files to process; use '-' to read from stdin\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s MyActor.cpp                       # Document every signature, print to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -write MyActor.cpp                # Same, rewriting the file in place\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -line 42 MyActor.cpp              # Document only the signature on line 42\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve -addr 127.0.0.1:7433       # Serve the HTTP API for editor plugins\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	var diagnostics *diag.System
	switch {
	case *quietFlag:
		diagnostics = diag.NewQuiet()
	case *verboseFlag:
		diagnostics = diag.NewVerbose()
	default:
		diagnostics = diag.NewSystem(diag.LevelInfo)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}

	gen := header.NewGenerator(cfg.BriefRules()...)

	if *serveFlag {
		addr := cfg.Listen
		if *addrFlag != "" {
			addr = *addrFlag
		}
		diagnostics.Info("Serving header API on %s", addr)
		if err := server.New(gen).Start(addr); err != nil {
			diagnostics.Error("Server failed: %v", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// The command is registered once per process and every document access
	// runs on the executor's single worker, mirroring a hosting editor's
	// UI-affine thread.
	cmd := command.NewInsertHeader(signature.NewMatcher(), gen, diagnostics)
	if err := command.Register(cmd); err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}
	defer command.Unregister()

	executor := command.NewExecutor()
	defer executor.Close()

	failed := false
	for _, path := range args {
		if err := processFile(path, *lineFlag, *writeFlag, executor, gen, diagnostics); err != nil {
			diagnostics.Error("%v", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// processFile documents one file: a single signature when line > 0, otherwise
// every undocumented signature in the file.
func processFile(path string, line int, write bool, executor *command.Executor, gen *header.Generator, diagnostics *diag.System) error {
	var buf *editor.Buffer
	var err error
	if path == "-" {
		buf, err = editor.ReadBuffer(os.Stdin)
	} else {
		buf, err = editor.OpenBuffer(path)
	}
	if err != nil {
		return err
	}

	if line > 0 {
		cmd, ok := command.Registered()
		if !ok {
			return fmt.Errorf("insert-header command is not registered")
		}
		var result command.Result
		if err := executor.Do(func() {
			result = cmd.Execute(buf, line-1)
		}); err != nil {
			return err
		}
		switch result {
		case command.Inserted:
			diagnostics.Verbose("Inserted header at %s:%d", path, line)
		case command.NoMatch:
			return fmt.Errorf("no header inserted at %s:%d", path, line)
		case command.Aborted:
			return fmt.Errorf("line %d is out of range in %s", line, path)
		}
	} else {
		var count int
		var scanErr error
		if err := executor.Do(func() {
			count, scanErr = scanner.NewScanner(gen).Annotate(buf)
		}); err != nil {
			return err
		}
		if scanErr != nil {
			return scanErr
		}
		diagnostics.Verbose("Inserted %d headers in %s", count, path)
	}

	if write && path != "-" {
		return buf.WriteFile(path)
	}
	fmt.Print(buf.String())
	return nil
}
