package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"

	"pdf_splitter/cmd/option"
	"pdf_splitter/cmd/serve"
	"pdf_splitter/cmd/version"
	"pdf_splitter/config"
	"pdf_splitter/pdf"
	"pdf_splitter/splitter"
)

// splitFlags are the flags of the root command
type splitFlags struct {
	input     string
	outputDir string
	pages     int
	prefix    string
	verify    bool
	strict    bool
}

// NewCommand returns the root command. Run without a subcommand it splits --input.
func NewCommand(stderr io.Writer) *cobra.Command {
	global := &option.Global{}
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Args:          cobra.NoArgs,
		Use:           "pdfsplit",
		Short:         "Splits PDFs into manageable chunks",
		Long:          "pdfsplit splits a PDF into sequential parts of at most --pages pages, written as {prefix}_part{N}.pdf",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			api.DisableConfigDir()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, global, flags, stderr)
		},
	}

	cmd.PersistentFlags().StringVar(&global.ConfigPath, "config", "", "YAML configuration file (default $PDFSPLIT_CONFIG)")
	cmd.PersistentFlags().StringVar(&global.LogLevel, "log-level", "", "diagnostic log level: debug, info, warn or error")

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "source PDF file")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", config.DefaultOutputDir, "destination directory")
	cmd.Flags().IntVarP(&flags.pages, "pages", "p", config.DefaultPages, "max pages per output file")
	cmd.Flags().StringVar(&flags.prefix, "prefix", config.DefaultPrefix, "output filename prefix")
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "re-read every written part and check its page count")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "validate the source PDF strictly")
	cmd.MarkFlagRequired("input")

	cmd.AddCommand(serve.NewCommand(global, stderr, InitLog))
	cmd.AddCommand(version.NewCommand())
	return cmd
}

func runSplit(cmd *cobra.Command, global *option.Global, flags *splitFlags, stderr io.Writer) error {
	cfg, err := global.Load()
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("output-dir") {
		cfg.Split.OutputDir = flags.outputDir
	}
	if fs.Changed("pages") {
		cfg.Split.Pages = flags.pages
	}
	if fs.Changed("prefix") {
		cfg.Split.Prefix = flags.prefix
	}
	if fs.Changed("verify") {
		cfg.Split.Verify = flags.verify
	}
	if fs.Changed("strict") {
		cfg.Split.Strict = flags.strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := InitLog(stderr, global.Level(cfg, "error")); err != nil {
		return err
	}

	s := splitter.New(splitter.PDFLoader(pdf.Loader{Strict: cfg.Split.Strict}), cmd.OutOrStdout(), nil)
	_, err = s.Run(splitter.Options{
		Input:     flags.input,
		OutputDir: cfg.Split.OutputDir,
		MaxPages:  cfg.Split.Pages,
		Prefix:    cfg.Split.Prefix,
		Verify:    cfg.Split.Verify,
	})
	return err
}

// Execute runs the command tree with args and reports any failure on stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewCommand(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "[Error] %v\n", err)
		return err
	}
	return nil
}

// Run runs the command tree against the process arguments.
func Run() error {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
