// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/Vesnica/STARK-HE/pkg/air"
	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
	"github.com/Vesnica/STARK-HE/pkg/util/field/bls12_377"
	"github.com/Vesnica/STARK-HE/pkg/util/field/f128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace [flags] data_file",
	Short: "Build the execution trace for a given input data file.",
	Long: `Build the execution trace of the homomorphic-addition circuit
	for the ciphertext coefficients in the given data file.  The trace can
	be written out as JSON and/or printed in human-readable form.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFieldAgnosticCmd(cmd, args, traceCmds)
	},
}

// Available instances
var traceCmds = []FieldAgnosticCmd{
	{field.F128, runTraceCmd[f128.Element]},
	{field.BLS12_377, runTraceCmd[bls12_377.Element]},
}

func runTraceCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	configureLogging(cmd)
	//
	var (
		out   = GetString(cmd, "out")
		print = GetFlag(cmd, "print")
		start = GetUint(cmd, "start")
		end   = GetUint(cmd, "end")
	)
	// Parse out circuit inputs
	inputs := readCircuitInputs[F](args[0])
	// Build trace
	tr, err := air.BuildTrace(inputs)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("built %d x %d trace", tr.Width(), tr.Height())
	//
	if out != "" {
		writeTraceFile(out, tr)
	}
	//
	if print {
		trace.NewPrinter[F]().Window(start, end).Print(tr)
	}
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().String("out", "", "write trace to a given JSON file")
	traceCmd.Flags().Bool("print", false, "print trace in human-readable form")
	traceCmd.Flags().Uint("start", 0, "first row to print")
	traceCmd.Flags().Uint("end", math.MaxUint, "last row to print")
}
