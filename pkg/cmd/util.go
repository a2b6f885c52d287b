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
	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/trace/json"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected boolean flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// configureLogging applies the verbosity flag to the global logger.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// readCircuitInputs parses an input data file into circuit inputs,
// exiting with a suitable message when the file is malformed.
func readCircuitInputs[F field.Element[F]](filename string) *air.Inputs[F] {
	data, err := exchange.ReadInputFile(filename)
	if err == nil {
		var inputs *air.Inputs[F]
		//
		if inputs, err = exchange.CircuitInputs[F](data); err == nil {
			return inputs
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// readTraceFile parses a trace file, exiting with a suitable message when
// the file is malformed.
func readTraceFile[F field.Element[F]](filename string) *trace.ArrayTrace[F] {
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var tr *trace.ArrayTrace[F]
		//
		if tr, err = json.FromBytes[F](bytes, air.ColumnNames()); err == nil {
			return tr
		}
		//
		err = fmt.Errorf("%s: %w", filename, err)
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// writeTraceFile writes a trace out as JSON.
func writeTraceFile[F field.Element[F]](filename string, tr *trace.ArrayTrace[F]) {
	bytes, err := json.ToBytes[F](tr)
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote %d bytes to %s", len(bytes), filename)
}
