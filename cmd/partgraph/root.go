// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "partgraph",
		Short:         "Inspect and transform partitioned graph documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(a.logLevel, a.logFormat, a.errOut)
			a.log.Debug("command start", "command", cmd.Name())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", defaultLogFormat, "log format: text or json")
	pf.StringVar(&a.inFormat, "in-format", "", "input format (yaml or json); default from the file extension")
	pf.StringVar(&a.outFormat, "out-format", "", "output format (yaml or json); default from -o or the input")
	pf.StringVarP(&a.output, "output", "o", "", "output file; default standard output")

	root.AddCommand(
		newValidateCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
		newInduceCmd(a),
		newBFSCmd(a),
		newDFSCmd(a),
		newTopoCmd(a),
		newPruneCmd(a),
	)

	return root
}
