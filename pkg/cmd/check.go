// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/Vesnica/STARK-HE/pkg/air"
	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
	"github.com/Vesnica/STARK-HE/pkg/util/field/bls12_377"
	"github.com/Vesnica/STARK-HE/pkg/util/field/f128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] data_file [trace_file]",
	Short: "Check a trace against the circuit relations.",
	Long: `Check that a trace satisfies the transition and boundary
	relations of the homomorphic-addition circuit for the given input data.
	When a trace file is given it is checked cell-for-cell against the
	trace rebuilt from the data; otherwise the rebuilt trace is checked for
	self-consistency.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFieldAgnosticCmd(cmd, args, checkCmds)
	},
}

// Available instances
var checkCmds = []FieldAgnosticCmd{
	{field.F128, runCheckCmd[f128.Element]},
	{field.BLS12_377, runCheckCmd[bls12_377.Element]},
}

func runCheckCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	if len(args) != 1 && len(args) != 2 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	configureLogging(cmd)
	//
	report := GetFlag(cmd, "report")
	// Parse out circuit inputs
	inputs := readCircuitInputs[F](args[0])
	// Rebuild expected trace
	expected, err := air.BuildTrace(inputs)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	tr := expected
	// Compare against a given trace (if any)
	if len(args) == 2 {
		tr = readTraceFile[F](args[1])
		//
		if err := compareTraces(tr, expected); err != nil {
			fail(tr, err, report)
		}
	}
	// Check circuit relations
	if err := air.Check(tr, air.GetPublicInputs(expected)); err != nil {
		fail(tr, err, report)
	}
	//
	log.Debugf("checked %d x %d trace", tr.Width(), tr.Height())
	//
	fmt.Println("OK")
}

// compareTraces checks that two traces agree cell-for-cell.
func compareTraces[F field.Element[F]](tr *trace.ArrayTrace[F], expected *trace.ArrayTrace[F]) error {
	if tr.Width() != expected.Width() {
		return fmt.Errorf("trace has %d columns, expected %d", tr.Width(), expected.Width())
	} else if tr.Height() != expected.Height() {
		return fmt.Errorf("trace has %d rows, expected %d", tr.Height(), expected.Height())
	}
	//
	for col := uint(0); col < tr.Width(); col++ {
		for row := uint(0); row < tr.Height(); row++ {
			// Errors unreachable for in-range cells.
			lhs, _ := tr.Get(col, row)
			rhs, _ := expected.Get(col, row)
			//
			if lhs.Cmp(rhs) != 0 {
				return fmt.Errorf("mismatch in column %s at row %d (expected %s, found %s)",
					tr.ColumnName(col), row, rhs, lhs)
			}
		}
	}
	//
	return nil
}

// fail reports a check failure, optionally printing the offending trace.
func fail[F field.Element[F]](tr *trace.ArrayTrace[F], err error, report bool) {
	if report {
		trace.NewPrinter[F]().Print(tr)
	}
	//
	fmt.Println(err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("report", false, "report details of failure for debugging")
}
