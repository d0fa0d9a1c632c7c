// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/trace"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/ngprovide/internal/config"
	"fillmore-labs.com/ngprovide/ngprovide"
)

var (
	// errRejected is returned by the check command when a declaration is not eligible.
	errRejected = errors.New("annotated declarations not eligible for injection")

	// errStdinWrite is returned when --write is combined with standard input.
	errStdinWrite = errors.New("can't write result to standard input")
)

const stdinName = "<stdin>"

// app holds the state of one command line invocation.
type app struct {
	cfg        ngprovide.Config
	configPath string
	jobs       int
	verbose    bool
	write      bool

	logger      *zap.Logger
	transformer *ngprovide.Transformer
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ngprovide [flags] [files...]",
		Short: "Rewrite @ngProvide annotated controllers in AngularJS tests",
		Long: `ngprovide replaces function declarations marked with an @ngProvide comment by an
array collecting the controller instances and a decorator registration swapping the
controller of the directive with the same name.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
		RunE:              a.runTransform,
	}

	pf := root.PersistentFlags()
	ngprovide.RegisterFlags(pf, &a.cfg)
	pf.StringVar(&a.configPath, "config", config.DefaultFile, "configuration file")
	pf.IntVarP(&a.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files processed in parallel")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.Flags().BoolVarP(&a.write, "write", "w", false, "write results to the source files instead of standard output")

	root.AddCommand(&cobra.Command{
		Use:   "check [flags] [files...]",
		Short: "List annotated declarations and whether they are eligible",
		RunE:  a.runCheck,
	})

	return root
}

// setup initializes logging and the transformer. Settings of the configuration file
// apply to all flags not given on the command line.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if a.verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	a.logger = zap.New(zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), level))

	file, err := ngprovide.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	a.cfg.Underlay(file, cmd.Flags())

	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}

	if ce := a.logger.Check(zapcore.DebugLevel, "configuration"); ce != nil {
		fields := []zap.Field{zap.String("config", a.configPath)}
		for _, attr := range opts.LogValue().Group() {
			fields = append(fields, zap.String(attr.Key, attr.Value.String()))
		}

		ce.Write(fields...)
	}

	if a.jobs < 1 {
		a.jobs = 1
	}

	a.transformer = ngprovide.New(append(opts, ngprovide.WithLogger(ngprovide.ZapLogger(a.logger)))...)

	return nil
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	ctx, task := trace.NewTask(cmd.Context(), "Transform")
	defer task.End()

	if len(args) == 0 {
		if a.write {
			return errStdinWrite
		}

		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("can't read standard input: %w", err)
		}

		out, n, err := a.transformer.Source(ctx, src)
		if err != nil {
			return fmt.Errorf("%s: %w", stdinName, err)
		}

		a.logger.Debug("transformed", zap.String("file", stdinName), zap.Int("replaced", n))

		_, err = cmd.OutOrStdout().Write(out)

		return err
	}

	results := make([][]byte, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	for i, path := range args {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("can't read source: %w", err)
			}

			out, n, err := a.transformer.Source(ctx, src)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			a.logger.Debug("transformed", zap.String("file", path), zap.Int("replaced", n))

			if !a.write {
				results[i] = out
				return nil
			}

			if n == 0 {
				return nil
			}

			a.logger.Info("rewriting", zap.String("file", path), zap.Int("replaced", n))

			return writeFile(path, out)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	ctx, task := trace.NewTask(cmd.Context(), "Check")
	defer task.End()

	names, sources := args, make([][]byte, len(args))
	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("can't read standard input: %w", err)
		}

		names, sources = []string{stdinName}, [][]byte{src}
	}

	results := make([]ngprovide.Findings, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	for i, path := range names {
		g.Go(func() error {
			src := sources[i]
			if src == nil {
				var err error
				if src, err = os.ReadFile(path); err != nil {
					return fmt.Errorf("can't read source: %w", err)
				}
			}

			findings, err := a.transformer.CheckSource(ctx, src)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = findings

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var rejected int

	w := cmd.OutOrStdout()
	for i, findings := range results {
		for _, f := range findings {
			if _, err := fmt.Fprintf(w, "%s:%d: %s\n", names[i], f.Line, f.Message()); err != nil {
				return err
			}
		}

		rejected += findings.Rejected()
	}

	if rejected > 0 {
		return fmt.Errorf("%d %w", rejected, errRejected)
	}

	return nil
}

// writeFile replaces the content of path, keeping its permissions.
func writeFile(path string, data []byte) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("can't write result: %w", err)
	}

	if err := os.WriteFile(path, data, fi.Mode().Perm()); err != nil {
		return fmt.Errorf("can't write result: %w", err)
	}

	return nil
}
