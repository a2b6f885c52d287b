// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package exchange

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Vesnica/STARK-HE/pkg/air"
	"github.com/Vesnica/STARK-HE/pkg/util/assert"
	"github.com/Vesnica/STARK-HE/pkg/util/field/f128"
)

func testInputData() *InputData {
	values := make([][][][]uint64, air.DataNum)
	//
	for d := range values {
		values[d] = make([][][]uint64, air.ValueNum)
		//
		for v := range values[d] {
			values[d][v] = make([][]uint64, air.CoeffLevel)
			//
			for l := range values[d][v] {
				values[d][v][l] = []uint64{
					uint64(d + v + 1), uint64(d + l + 2), uint64(v + l + 3), uint64(d + 5)}
			}
		}
	}
	//
	return &InputData{Modulus: []uint64{97, 193}, Values: values}
}

func TestInputFile_RoundTrip(t *testing.T) {
	var (
		data     = testInputData()
		filename = filepath.Join(t.TempDir(), "data.json")
	)
	//
	assert.Nil(t, WriteFile(filename, data))
	//
	read, err := ReadInputFile(filename)
	assert.Nil(t, err)
	assert.Equal(t, data, read)
}

func TestReadInputFile_Missing(t *testing.T) {
	_, err := ReadInputFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.NonNil(t, err)
}

func TestReadInputFile_Malformed(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data.json")
	assert.Nil(t, os.WriteFile(filename, []byte("{\"Modulus\": oops"), 0644))
	//
	_, err := ReadInputFile(filename)
	assert.NonNil(t, err)
}

func TestCircuitInputs(t *testing.T) {
	inputs, err := CircuitInputs[f128.Element](testInputData())
	assert.Nil(t, err)
	assert.Equal(t, uint(4), inputs.Degree())
	// A coefficient outside its modulus is rejected
	bad := testInputData()
	bad.Values[0][0][1][2] = 193
	//
	_, err = CircuitInputs[f128.Element](bad)
	assert.NonNil(t, err)
}

func TestResult_RoundTrip(t *testing.T) {
	var (
		proof    = []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
		filename = filepath.Join(t.TempDir(), "result.json")
	)
	//
	inputs, err := CircuitInputs[f128.Element](testInputData())
	assert.Nil(t, err)
	//
	tr, err := air.BuildTrace(inputs)
	assert.Nil(t, err)
	//
	pub := air.GetPublicInputs(tr)
	//
	data, err := EncodeResult(pub, proof)
	assert.Nil(t, err)
	assert.Nil(t, WriteFile(filename, data))
	//
	read, err := ReadResultFile(filename)
	assert.Nil(t, err)
	//
	decoded, decodedProof, err := DecodeResult[f128.Element](read)
	assert.Nil(t, err)
	assert.Equal(t, proof, decodedProof)
	//
	for v := 0; v < air.ValueNum; v++ {
		for l := 0; l < air.CoeffLevel; l++ {
			assert.Equal(t, len(pub.Result[v][l]), len(decoded.Result[v][l]))
			//
			for k := range pub.Result[v][l] {
				assert.True(t, pub.Result[v][l][k].Cmp(decoded.Result[v][l][k]) == 0,
					"polynomial %d, level %d, coefficient %d", v, l, k)
			}
		}
	}
}

func TestEncodeResult_EmptyProof(t *testing.T) {
	inputs, err := CircuitInputs[f128.Element](testInputData())
	assert.Nil(t, err)
	//
	tr, err := air.BuildTrace(inputs)
	assert.Nil(t, err)
	//
	data, err := EncodeResult(air.GetPublicInputs(tr), nil)
	assert.Nil(t, err)
	assert.Equal(t, "", data.Proof)
}

func TestDecodeResult_Validation(t *testing.T) {
	inputs, err := CircuitInputs[f128.Element](testInputData())
	assert.Nil(t, err)
	//
	tr, err := air.BuildTrace(inputs)
	assert.Nil(t, err)
	//
	data, err := EncodeResult(air.GetPublicInputs(tr), []byte{1, 2, 3})
	assert.Nil(t, err)
	// Wrong polynomial count
	bad := &ResultData{Result: data.Result[:1], Proof: data.Proof}
	_, _, err = DecodeResult[f128.Element](bad)
	assert.NonNil(t, err)
	// Wrong level count
	bad = &ResultData{Result: [][][]uint64{data.Result[0][:1], data.Result[1]}, Proof: data.Proof}
	_, _, err = DecodeResult[f128.Element](bad)
	assert.NonNil(t, err)
	// Corrupt proof encoding
	bad = &ResultData{Result: data.Result, Proof: "not base64!"}
	_, _, err = DecodeResult[f128.Element](bad)
	assert.NonNil(t, err)
}
