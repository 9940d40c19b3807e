// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command dynarr replays array operation scripts.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/dynarr/internal/script"
)

type options struct {
	verbose bool
	sep     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "dynarr",
		Short:        "replay sparse array operations",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every step")

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "run a YAML operation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sep") {
				s.Separator = opts.sep
			}
			return runScript(cmd.OutOrStdout(), opts, s)
		},
	}
	runCmd.Flags().StringVar(&opts.sep, "sep", script.DefaultSeparator, "separator used to print the array")

	var initElems string
	evalCmd := &cobra.Command{
		Use:   "eval [op] [args...]",
		Short: "apply a single operation to a comma separated array",
		Example: `  dynarr eval --init angel,clown,mandarin,surgeon splice 2 0 drum
  dynarr eval --init 4,2,5,1,3 sort numeric`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := evalScript(initElems, args)
			if err != nil {
				return err
			}
			s.Separator = opts.sep
			return runScript(cmd.OutOrStdout(), opts, s)
		},
	}
	evalCmd.Flags().StringVar(&initElems, "init", "", "comma separated starting elements")
	evalCmd.Flags().StringVar(&opts.sep, "sep", script.DefaultSeparator, "separator used to print the array")

	root.AddCommand(runCmd, evalCmd)
	return root
}

// evalScript builds a one-step script. Every element and argument is
// decoded as a YAML scalar, so 4 is a number and "4" a string. An empty
// element, as in a,,b, is a hole.
func evalScript(initElems string, args []string) (*script.Script, error) {
	s := script.Default()
	s.Name = "eval"
	if initElems != "" {
		for i, f := range strings.Split(initElems, ",") {
			if f == "" {
				s.Init = append(s.Init, nil)
				s.Holes = append(s.Holes, i)
				continue
			}
			v, err := scalar(f)
			if err != nil {
				return nil, err
			}
			s.Init = append(s.Init, v)
		}
	}
	st := script.Step{Op: args[0]}
	rest := args[1:]
	if st.Op == script.OpSort && len(rest) > 0 {
		st.Cmp, rest = rest[0], rest[1:]
	}
	for _, f := range rest {
		v, err := scalar(f)
		if err != nil {
			return nil, err
		}
		st.Args = append(st.Args, v)
	}
	s.Steps = []script.Step{st}
	return s, s.Validate()
}

func scalar(text string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("decode %q: %w", text, err)
	}
	return v, nil
}

func runScript(w io.Writer, opts *options, s *script.Script) error {
	log, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, results, err := script.NewRunner(log).Run(s)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tOP\tRESULT\tLENGTH\tARRAY")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t[%s]\n", r.Step, r.Op, r.Value, r.Length, r.Array)
	}
	if ferr := tw.Flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "final: [%s] length=%d\n", a.Join(s.Separator), a.Len())
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
