// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/Vesnica/STARK-HE/pkg/exchange"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
	"github.com/Vesnica/STARK-HE/pkg/util/field/bls12_377"
	"github.com/Vesnica/STARK-HE/pkg/util/field/f128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [flags] result_file",
	Short: "Unpack a result file produced by encode.",
	Long: `Unpack a result file into its public inputs and proof bytes,
	reporting their dimensions.  The raw proof bytes can be written out for
	the external verifier.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFieldAgnosticCmd(cmd, args, decodeCmds)
	},
}

// Available instances
var decodeCmds = []FieldAgnosticCmd{
	{field.F128, runDecodeCmd[f128.Element]},
	{field.BLS12_377, runDecodeCmd[bls12_377.Element]},
}

func runDecodeCmd[F field.Element[F]](cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	configureLogging(cmd)
	//
	proofFile := GetString(cmd, "proof")
	//
	data, err := exchange.ReadResultFile(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	pub, proof, err := exchange.DecodeResult[F](data)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Printf("result: %d polynomials, %d levels, %d coefficients\n",
		len(pub.Result), len(pub.Result[0]), len(pub.Result[0][0]))
	fmt.Printf("proof: %d bytes\n", len(proof))
	//
	if proofFile != "" {
		if err := os.WriteFile(proofFile, proof, 0644); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("wrote %d proof bytes to %s", len(proof), proofFile)
	}
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().String("proof", "", "write raw proof bytes to a given file")
}
