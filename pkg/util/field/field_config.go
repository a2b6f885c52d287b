// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package field

// F128 is the default field: the 128-bit STARK-friendly prime field
// 2^128 - 45*2^40 + 1 used by the proving side of the pipeline.
var F128 = Config{"F128", 128}

// BLS12_377 is the scalar field of the BLS12-377 curve, supported as an
// alternative base field for SNARK-oriented backends.
var BLS12_377 = Config{"BLS12_377", 252}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	F128,
	BLS12_377,
}

// Config provides a simple mechanism for identifying the field over which
// traces should be built and checked.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Number of bits available in the field.
	BandWidth uint
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil if no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
