package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/tinyrange/a64as/internal/asm/arm64"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "a64as: %s\n", diagnostic(err))
		os.Exit(1)
	}
}

// diagnostic renders err for the terminal. Source paths and text are user
// controlled, so escape sequences are removed.
func diagnostic(err error) string {
	return ansi.Strip(err.Error())
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("a64as", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "Write the object to `file` instead of standard output")
	listing := fs.String("listing", "", "Write a YAML listing of the encoded instructions to `file`")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: a64as [flags] <source.s>\n\n")
		fmt.Fprintf(stderr, "Assemble AArch64 source into an ELF64 relocatable object.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one source file, got %d arguments", fs.NArg())
	}

	logger := slog.Default()
	if *debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	assembler := arm64.NewAssembler(arm64.NewTable(), logger)
	a, err := assembler.AssembleFile(fs.Arg(0))
	if err != nil {
		return err
	}

	// Everything is serialized before the first write so a failure leaves
	// no partial output behind.
	var obj bytes.Buffer
	if err := a.WriteObject(&obj); err != nil {
		return err
	}
	if *listing != "" {
		var buf bytes.Buffer
		if err := a.WriteListing(&buf); err != nil {
			return err
		}
		if err := os.WriteFile(*listing, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
		logger.Debug("wrote listing", slog.String("path", *listing))
	}

	if *output == "" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("refusing to write a binary object to a terminal (use -o)")
		}
		if _, err := stdout.Write(obj.Bytes()); err != nil {
			return fmt.Errorf("write object: %w", err)
		}
	} else if err := os.WriteFile(*output, obj.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	logger.Debug("wrote object",
		slog.String("path", *output),
		slog.Int("bytes", obj.Len()),
		slog.Int("instructions", a.Program.Count()))
	return nil
}
