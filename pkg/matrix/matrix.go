/*
Copyright 2022 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package matrix provides fixed-size 3x3 matrix arithmetic, used to
// assemble the row-major matrix parsed from a CalRGB color space's
// optional Matrix entry before it is narrowed to the float32 form the
// conversion pipeline needs.
package matrix

import "fmt"

// Matrix is a 3x3 row-major matrix.
type Matrix [3][3]float64

// Identity is the multiplicative identity.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Multiply calculates the product of two matrices.
func (m Matrix) Multiply(n Matrix) Matrix {
	var p Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return p
}

func (m Matrix) String() string {
	return fmt.Sprintf("%.6f %.6f %.6f\n%.6f %.6f %.6f\n%.6f %.6f %.6f\n",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}
