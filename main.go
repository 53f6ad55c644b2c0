// Command hirdump dumps HIR fixtures as nested brackets.
//
// With no file arguments, hirdump reads a single fixture from standard
// input and writes its dump to standard output. Directories are walked
// for .yaml and .yml files.
//
// The HIRDUMP environment variable holds a comma separated list of
// default options:
//
//	spaces	indent with four spaces
//	tabs	indent with tabs (the default)
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"mibk.dev/hirdump/dump"
	"mibk.dev/hirdump/fixture"
)

type config struct {
	outDir  string
	watch   bool
	jobs    int
	spaces  bool
	verbose bool

	options dump.Options
	log     *zap.Logger
}

func (c *config) decoder() *fixture.Decoder { return &fixture.Decoder{Logger: c.log} }

func newRootCmd() *cobra.Command {
	cfg := &config{log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:          "hirdump [flags] [path ...]",
		Short:        "Dump HIR fixtures as nested brackets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if cfg.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			log, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			cfg.log = log

			opts, unknown := parseEnvOptions(os.Getenv("HIRDUMP"))
			for _, opt := range unknown {
				log.Warn("unknown option", zap.String("env", "HIRDUMP"), zap.String("option", opt))
			}
			if cfg.spaces {
				opts |= dump.UseSpaces
			}
			cfg.options = opts
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = cfg.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.outDir, "output", "o", "", "write each dump to `dir`/<name>.dump instead of stdout")
	flags.BoolVarP(&cfg.watch, "watch", "w", false, "dump files again whenever they change")
	flags.IntVarP(&cfg.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files dumped in parallel")
	flags.BoolVar(&cfg.spaces, "spaces", false, "indent with four spaces instead of tabs")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug messages")
	return cmd
}

func run(cmd *cobra.Command, cfg *config, args []string) error {
	stdout := cmd.OutOrStdout()
	if len(args) == 0 {
		if cfg.watch {
			return errors.New("cannot use -w with standard input")
		}
		if cfg.outDir != "" {
			return errors.New("cannot use -o with standard input")
		}
		crate, err := cfg.decoder().Decode(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("<stdin>: %w", err)
		}
		return dump.Fprint(stdout, crate, cfg.options)
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := dumpFiles(ctx, cfg, paths, stdout); err != nil {
		return err
	}
	if cfg.watch {
		return watchFiles(ctx, cfg, paths, stdout)
	}
	return nil
}

// expandPaths replaces directories in args with the fixtures they contain.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch filepath.Ext(d.Name()) {
			default:
				return nil
			case ".yaml", ".yml":
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
