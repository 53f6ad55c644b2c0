package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"mibk.dev/hirdump/dump"
)

// dumpFiles dumps paths using up to cfg.jobs goroutines. Dumps written
// to w keep the order of paths.
func dumpFiles(ctx context.Context, cfg *config, paths []string, w io.Writer) error {
	if cfg.outDir != "" {
		if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
			return err
		}
	}

	outs := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.jobs > 0 {
		g.SetLimit(cfg.jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := dumpFile(cfg, path)
			if err != nil {
				return err
			}
			if cfg.outDir == "" {
				outs[i] = out
				return nil
			}
			name := filepath.Join(cfg.outDir, dumpName(path))
			cfg.log.Debug("writing dump", zap.String("fixture", path), zap.String("dump", name))
			return os.WriteFile(name, out, 0o644)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outs {
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *config, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	crate, err := cfg.decoder().Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	buf := new(bytes.Buffer)
	if err := dump.Fprint(buf, crate, cfg.options); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// dumpName returns the name of the dump of the fixture at path:
// testdata/fn.yaml becomes fn.dump.
func dumpName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".dump"
}
