package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/christianalfoni/rask-ui/internal/compiler"
	"github.com/christianalfoni/rask-ui/internal/transform"
)

const stdinName = "<stdin>"

var ErrWriteStdin = errors.New("--write needs file arguments")

type transformFlags struct {
	write bool
	diff  bool
	jobs  int
}

func (a *app) transformCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "transform [files...]",
		Short: "Rewrite the components in JavaScript files",
		Long: `Rewrite the function components in JSX-lowered JavaScript files.

Examples:
  rask-compiler transform app.js                 # Print the result
  rask-compiler transform -w src/*.js            # Rewrite files in place
  rask-compiler transform -d src/*.js            # Show what would change
  cat app.js | rask-compiler transform           # Read from stdin
  rask-compiler transform --import-source my-ui app.js`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				if flags.write {
					return ErrWriteStdin
				}
				return a.transformStdin(cmd, flags)
			}
			return a.transformFiles(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to changed files")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a line diff instead of the result")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files compiled in parallel (default: number of CPUs)")
	cmd.MarkFlagsMutuallyExclusive("write", "diff")

	return cmd
}

func (a *app) transformStdin(cmd *cobra.Command, flags transformFlags) error {
	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	out, err := compiler.Compile(cmd.Context(), stdinName, source, a.transformConfig(), transform.WithLogger(a.log))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flags.diff {
		if out.Result.Changed() {
			_, err = io.WriteString(w, lineDiff(stdinName, string(source), out.Code))
		}
		return err
	}
	_, err = io.WriteString(w, out.Code)
	return err
}

// transformFiles compiles files concurrently and reports them in argument
// order. The first failure cancels the files not yet started.
func (a *app) transformFiles(cmd *cobra.Command, files []string, flags transformFlags) error {
	jobs := flags.jobs
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}
	cfg := a.transformConfig()
	reports := make([]string, len(files))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, file := range files {
		g.Go(func() error {
			info, err := os.Stat(file)
			if err != nil {
				return err
			}
			source, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read source file: %w", err)
			}

			out, err := compiler.Compile(ctx, file, source, cfg, transform.WithLogger(a.log.With(zap.String("file", file))))
			if err != nil {
				return err
			}

			switch {
			case flags.write:
				if !out.Result.Changed() {
					return nil
				}
				if err := os.WriteFile(file, []byte(out.Code), info.Mode().Perm()); err != nil {
					return fmt.Errorf("failed to write %s: %w", file, err)
				}
				a.log.Info("rewrote file", zap.String("file", file), zap.Int("components", len(out.Result.Components)))
				reports[i] = file + "\n"
			case flags.diff:
				if out.Result.Changed() {
					reports[i] = lineDiff(file, string(source), out.Code)
				}
			case len(files) > 1:
				reports[i] = "// " + file + "\n" + out.Code
			default:
				reports[i] = out.Code
			}
			return nil
		})
	}
	err := g.Wait()

	w := cmd.OutOrStdout()
	for _, report := range reports {
		if _, werr := io.WriteString(w, report); werr != nil {
			return werr
		}
	}
	return err
}

// lineDiff renders the line changes from before to after, prefixing each
// line with a space, "-" or "+".
func lineDiff(name, before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", name, name)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
