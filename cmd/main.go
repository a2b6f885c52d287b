// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package main

import (
	"github.com/Vesnica/STARK-HE/pkg/cmd"
)

func main() {
	cmd.Execute()
}
