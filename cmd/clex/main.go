package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/clex/internal/cli"
	"github.com/cybertec-postgresql/clex/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "clex",
		Usage:   "Lexical analyzer for C source files",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "scan",
				Usage:     "Tokenize C sources and print tokens, lexical errors and the symbol table",
				ArgsUsage: "[path...]",
				Action:    scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "config",
						Usage: "Config file path (default: ./clex.toml when present)",
					},
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum files tokenized concurrently (1 = sequential)",
					},
					&urfavecli.BoolFlag{
						Name:  "strict",
						Usage: "Also report unterminated literals and comments and unexpected characters",
					},
					&urfavecli.IntFlag{
						Name:  "max-lexeme",
						Usage: "Truncate lexemes longer than this and report them (0 = unlimited)",
					},
					&urfavecli.BoolFlag{
						Name:  "char-kind",
						Usage: "Report character literals as Character instead of String",
					},
					&urfavecli.StringFlag{
						Name:  "output-file",
						Usage: "Analysis data output path",
					},
					&urfavecli.StringFlag{
						Name:    "connection",
						Aliases: []string{"c"},
						Usage:   "PostgreSQL connection string (URI or key=value format) receiving the analysis",
						Sources: urfavecli.EnvVars("CLEX_CONNECTION"),
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Generate a report from saved analysis data",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text, json, or html)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.StringFlag{
						Name:  "analysis-file",
						Usage: "Analysis data input path",
						Value: cli.DefaultConfig.OutputFile,
					},
					&urfavecli.StringFlag{
						Name:    "connection",
						Aliases: []string{"c"},
						Usage:   "Load the analysis from PostgreSQL instead of the analysis file",
						Sources: urfavecli.EnvVars("CLEX_CONNECTION"),
					},
					&urfavecli.IntFlag{
						Name:  "run-id",
						Usage: "Stored run to load with --connection (default: latest)",
					},
				},
			},
			{
				Name:      "symbols",
				Usage:     "List symbols of saved analysis data, fuzzy-ranked by an optional query",
				ArgsUsage: "[query]",
				Action:    symbolsCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "analysis-file",
						Usage: "Analysis data input path",
						Value: cli.DefaultConfig.OutputFile,
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scanCommand handles the 'clex scan' command
func scanCommand(ctx context.Context, cmd *urfavecli.Command) error {
	// Load configuration: defaults < config file < flags
	config, err := cli.LoadConfig(cmd.String("config"))
	if err != nil {
		logger.Fatalf(2, "%v", err)
	}

	flags := cli.Flags{
		Parallel:   int(cmd.Int("parallel")),
		Strict:     cmd.Bool("strict"),
		CharKind:   cmd.Bool("char-kind"),
		OutputFile: cmd.String("output-file"),
		Connection: cmd.String("connection"),
		Verbose:    cmd.Bool("verbose"),
	}
	if cmd.IsSet("max-lexeme") {
		maxLexeme := int(cmd.Int("max-lexeme"))
		flags.MaxLexeme = &maxLexeme
	}
	cli.ApplyFlagsToConfig(config, flags)

	// Validate configuration
	if err := config.Validate(); err != nil {
		logger.Fatalf(2, "%v", err)
	}

	exitCode, err := cli.Run(ctx, config, cmd.Args().Slice(), os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}

// reportCommand handles the 'clex report' command
func reportCommand(ctx context.Context, cmd *urfavecli.Command) error {
	return cli.Report(ctx, cli.ReportOptions{
		AnalysisFile: cmd.String("analysis-file"),
		Connection:   cmd.String("connection"),
		RunID:        cmd.Int("run-id"),
		Format:       cmd.String("format"),
		Output:       cmd.String("output"),
	}, os.Stdout, os.Stderr)
}

// symbolsCommand handles the 'clex symbols' command
func symbolsCommand(ctx context.Context, cmd *urfavecli.Command) error {
	return cli.Symbols(cmd.String("analysis-file"), cmd.Args().First(), os.Stdout)
}
