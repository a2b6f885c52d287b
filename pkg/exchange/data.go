// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package exchange implements the data files shared with the companion
// encryption project.  Input files carry the raw RNS coefficients of the
// operand ciphertexts; result files carry the result coefficients together
// with an opaque, base64-encoded proof blob produced by the external
// prover.  The ciphertext wire format itself belongs to the companion
// project and is never interpreted here.
package exchange

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/Vesnica/STARK-HE/pkg/air"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// InputData is the on-disk form of the circuit inputs: the per-level RNS
// moduli, and the operand coefficient tensor indexed as
// [operand][polynomial][level][coefficient].
type InputData struct {
	Modulus []uint64      `json:"Modulus"`
	Values  [][][][]uint64 `json:"Values"`
}

// ResultData is the on-disk form of the circuit output: the result
// coefficient tensor indexed as [polynomial][level][coefficient], and the
// proof bytes in base64.
type ResultData struct {
	Result [][][]uint64 `json:"result"`
	Proof  string       `json:"proof"`
}

// ReadInputFile reads and parses an input data file.
func ReadInputFile(filename string) (*InputData, error) {
	var data InputData
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return &data, nil
}

// ReadResultFile reads and parses a result data file.
func ReadResultFile(filename string) (*ResultData, error) {
	var data ResultData
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return &data, nil
}

// WriteFile writes a given data record as JSON to a given file.
func WriteFile(filename string, data any) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	//
	return os.WriteFile(filename, bytes, 0644)
}

// CircuitInputs translates an input data file into circuit inputs over a
// given field.
func CircuitInputs[F field.Element[F]](data *InputData) (*air.Inputs[F], error) {
	return air.NewInputs[F](data.Modulus, data.Values)
}

// EncodeResult packages public inputs and externally produced proof bytes
// into a result data record.  Result coefficients must fit in 64 bits,
// which holds whenever they are residues of the (64-bit) RNS moduli.
func EncodeResult[F field.Element[F]](pub *air.PublicInputs[F], proof []byte) (*ResultData, error) {
	result := make([][][]uint64, air.ValueNum)
	//
	for v := 0; v < air.ValueNum; v++ {
		result[v] = make([][]uint64, air.CoeffLevel)
		//
		for l := 0; l < air.CoeffLevel; l++ {
			coeffs := make([]uint64, len(pub.Result[v][l]))
			//
			for k, e := range pub.Result[v][l] {
				val := new(big.Int).SetBytes(e.Bytes())
				//
				if !val.IsUint64() {
					return nil, fmt.Errorf("result coefficient %d of polynomial %d, level %d exceeds 64 bits", k, v, l)
				}
				//
				coeffs[k] = val.Uint64()
			}
			//
			result[v][l] = coeffs
		}
	}
	//
	return &ResultData{result, base64.StdEncoding.EncodeToString(proof)}, nil
}

// DecodeResult unpacks a result data record into public inputs over a
// given field, plus the raw proof bytes.
func DecodeResult[F field.Element[F]](data *ResultData) (*air.PublicInputs[F], []byte, error) {
	var pub air.PublicInputs[F]
	//
	if len(data.Result) != air.ValueNum {
		return nil, nil, fmt.Errorf("expected %d result polynomials, found %d", air.ValueNum, len(data.Result))
	}
	//
	for v := 0; v < air.ValueNum; v++ {
		if len(data.Result[v]) != air.CoeffLevel {
			return nil, nil, fmt.Errorf("polynomial %d: expected %d levels, found %d",
				v, air.CoeffLevel, len(data.Result[v]))
		}
		//
		for l := 0; l < air.CoeffLevel; l++ {
			elements := make([]F, len(data.Result[v][l]))
			//
			for k, c := range data.Result[v][l] {
				elements[k] = field.Uint64[F](c)
			}
			//
			pub.Result[v][l] = elements
		}
	}
	//
	proof, err := base64.StdEncoding.DecodeString(data.Proof)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid proof encoding: %w", err)
	}
	//
	return &pub, proof, nil
}
