package cli

import (
	"io"

	"github.com/samber/do"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/cybertec-postgresql/clex/internal/logger"
	"github.com/cybertec-postgresql/clex/internal/runner"
)

// NewContainer wires the services of a scan around cfg. Log output goes
// to logOutput.
func NewContainer(cfg *Config, logOutput io.Writer) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i *do.Injector) (*logger.Logger, error) {
		cfg := do.MustInvoke[*Config](i)
		return logger.New(cfg.Verbose, logOutput), nil
	})

	do.Provide(injector, func(i *do.Injector) (*lexer.Dialect, error) {
		cfg := do.MustInvoke[*Config](i)
		return lexer.C().Extend(cfg.ExtraKeywords, cfg.ExtraOperators), nil
	})

	do.Provide(injector, func(i *do.Injector) (runner.ScannerFactory, error) {
		cfg := do.MustInvoke[*Config](i)
		dialect := do.MustInvoke[*lexer.Dialect](i)
		return runner.NewScannerFactory(dialect, ScannerOptions(cfg)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*runner.Executor, error) {
		cfg := do.MustInvoke[*Config](i)
		return runner.NewExecutor(do.MustInvoke[runner.ScannerFactory](i), cfg.Verbose), nil
	})

	do.Provide(injector, func(i *do.Injector) (*analysis.Store, error) {
		cfg := do.MustInvoke[*Config](i)
		return analysis.NewStore(cfg.OutputFile), nil
	})

	return injector
}

// ScannerOptions extracts the scanner settings from cfg
func ScannerOptions(cfg *Config) lexer.Options {
	return lexer.Options{
		Strict:                cfg.Strict,
		MaxLexemeLength:       cfg.MaxLexemeLength,
		DistinctCharacterKind: cfg.DistinctCharacterKind,
	}
}
