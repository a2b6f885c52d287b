// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/Vesnica/STARK-HE/pkg/air"
	"github.com/Vesnica/STARK-HE/pkg/exchange"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
	"github.com/Vesnica/STARK-HE/pkg/util/field/bls12_377"
	"github.com/Vesnica/STARK-HE/pkg/util/field/f128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [flags] data_file proof_file",
	Short: "Package public inputs and a proof into a result file.",
	Long: `Build the execution trace for the given data file, extract its
	public inputs, and package them together with the (externally produced)
	proof bytes into a result file for the companion encryption project.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFieldAgnosticCmd(cmd, args, encodeCmds)
	},
}

// Available instances
var encodeCmds = []FieldAgnosticCmd{
	{field.F128, runEncodeCmd[f128.Element]},
	{field.BLS12_377, runEncodeCmd[bls12_377.Element]},
}

func runEncodeCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	configureLogging(cmd)
	//
	out := GetString(cmd, "out")
	// Parse out circuit inputs
	inputs := readCircuitInputs[F](args[0])
	// Proof bytes are opaque
	proof, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Build trace and extract public inputs
	tr, err := air.BuildTrace(inputs)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	result, err := exchange.EncodeResult(air.GetPublicInputs(tr), proof)
	if err == nil {
		err = exchange.WriteFile(out, result)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("encoded %d proof bytes into %s", len(proof), out)
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().String("out", "result.json", "write result to a given JSON file")
}
