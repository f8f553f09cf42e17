// Command cnpj generates, validates and masks CNPJ identifiers from a terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"cnpj-toolkit/internal/cnpj"
	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/service"
)

const version = "0.1.0"

// errSomeInvalid makes validate exit with status 1 without printing an error.
var errSomeInvalid = errors.New("one or more identifiers are invalid")

// CLI defines the command-line interface for cnpj.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate valid identifiers"`
	Validate ValidateCmd `cmd:"" help:"Validate identifiers, masked or not"`
	Mask     MaskCmd     `cmd:"" help:"Format a value as ##.###.###/####-##"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// GenerateCmd prints freshly generated identifiers.
type GenerateCmd struct {
	Numeric bool `help:"Generate digit-only identifiers"`
	Count   int  `short:"n" default:"1" help:"Number of identifiers to generate"`
	Pure    bool `help:"Print the unmasked 14-character form"`
}

func (c *GenerateCmd) Run(out io.Writer, gen *cnpj.Generator) error {
	if c.Count < 1 || c.Count > service.MaxBatchSize {
		return fmt.Errorf("%w: must be between 1 and %d, got %d", domain.ErrInvalidCount, service.MaxBatchSize, c.Count)
	}

	mode := domain.ModeAlphanumeric
	if c.Numeric {
		mode = domain.ModeNumeric
	}

	ids, err := gen.GenerateBatch(mode, c.Count)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if c.Pure {
			fmt.Fprintln(out, id.Pure)
		} else {
			fmt.Fprintln(out, id.Masked)
		}
	}
	return nil
}

// ValidateCmd checks each value and prints one line per value.
type ValidateCmd struct {
	Values []string `arg:"" required:"" help:"Identifiers to check"`
}

func (c *ValidateCmd) Run(out io.Writer) error {
	allValid := true
	for _, raw := range c.Values {
		result := cnpj.Validate(raw)

		status := "valid"
		if !result.Valid {
			status = "invalid"
			allValid = false
		}
		fmt.Fprintf(out, "%s\t%s\n", result.Pure, status)
	}

	if !allValid {
		return errSomeInvalid
	}
	return nil
}

// MaskCmd formats a possibly partial value.
type MaskCmd struct {
	Value       string `arg:"" help:"Value to format"`
	Progressive bool   `help:"Only emit separators for segments already typed"`
}

func (c *MaskCmd) Run(out io.Writer) error {
	pure := strings.ToUpper(cnpj.StripMask(c.Value))

	if c.Progressive {
		fmt.Fprintln(out, cnpj.ApplyProgressiveMask(pure))
		return nil
	}
	fmt.Fprintln(out, cnpj.ApplyMask(pure))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintf(out, "cnpj version %s\n", version)
	return nil
}

func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("cnpj"),
		kong.Description("Generate, validate and mask CNPJ identifiers (2026 alphanumeric format)"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.Bind(cnpj.NewGenerator()),
	}, options...)
	return kong.New(cli, options...)
}

// run parses args and executes the selected command, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "cnpj: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%v", err)
		return 2
	}

	if err := ctx.Run(); err != nil {
		if errors.Is(err, errSomeInvalid) {
			return 1
		}
		fmt.Fprintf(stderr, "cnpj: error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
