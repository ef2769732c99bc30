// Package cli wires the transform pipeline into the dxform command.
package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dgallion1/dxform/internal/config"
	"github.com/dgallion1/dxform/internal/parser"
	"github.com/dgallion1/dxform/internal/tabular"
	"github.com/dgallion1/dxform/internal/transform"
)

const rootLong = `Extract a sequence of homogeneous elements as tabular data.

INFILE is the path to the source document (XML or HTML).

Each FIELD_SPEC selects one output column, in the form
'<source>:<name>[:<format>]':
  - <source> is either 'attrib' (the value is an attribute of the
    element) or 'text' (the value is the text of a child element).
  - <name> is the attribute name or the child element path.
  - <format> is an optional directive: [[fill]align][width][.precision][type]
    with align one of < > ^ and type one of s, d, f.

Example:

  dxform election_definition.xml --root-path reg_areas text:x:.5s text:y:.5s`

type transformOptions struct {
	infile      string
	fieldSpecs  []string
	indexField  string
	rootPath    string
	format      string
	delimiter   string
	inputFormat string
}

// NewRootCommand builds the dxform command tree.
func NewRootCommand() *cobra.Command {
	cfg := config.Load()
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)

	opts := transformOptions{}
	var verbose bool

	cmd := &cobra.Command{
		Use:          "dxform INFILE FIELD_SPEC...",
		Short:        "Extract a sequence of homogeneous elements as tabular data",
		Long:         rootLong,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.infile = args[0]
			opts.fieldSpecs = args[1:]
			return runTransform(cmd.OutOrStdout(), logger, opts)
		},
	}

	cmd.Flags().StringVar(&opts.indexField, "index-field", cfg.DefaultIndexField,
		"name of the ID field (the index in the sequence)")
	cmd.Flags().StringVar(&opts.rootPath, "root-path", "",
		"path of the root element of the sequence (bare names match at any depth)")
	cmd.Flags().StringVar(&opts.format, "format", cfg.DefaultFormat,
		"output format: csv, tsv, table, markdown")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", ",",
		"field delimiter for csv output")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "auto",
		"input format: auto, xml, html")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log diagnostics to stderr")

	cmd.AddCommand(newServeCommand(cfg, logger))

	return cmd
}

func runTransform(w io.Writer, logger *log.Logger, opts transformOptions) error {
	outFormat, err := tabular.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	delim, n := utf8.DecodeRuneInString(opts.delimiter)
	if n == 0 || n != len(opts.delimiter) {
		return fmt.Errorf("delimiter must be a single character, got %q", opts.delimiter)
	}

	t, err := transform.New(opts.indexField, opts.fieldSpecs, opts.rootPath)
	if err != nil {
		return err
	}

	var p parser.Parser
	if opts.inputFormat == "" || opts.inputFormat == "auto" {
		p, err = parser.ForFile(opts.infile)
	} else {
		p, err = parser.ForFormat(opts.inputFormat)
	}
	if err != nil {
		return err
	}

	f, err := os.Open(opts.infile)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := p.Parse(f)
	if err != nil {
		return err
	}

	records, err := t.Transform(doc)
	if err != nil {
		return err
	}
	logger.Debug("transformed", "file", opts.infile, "records", len(records))

	return tabular.Write(w, outFormat, t.FieldNames(), records, delim)
}
