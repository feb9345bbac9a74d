/*
Copyright 2018 The pdfcpu Authors.

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

package colorspace

import "testing"

func TestCalGrayScenario(t *testing.T) {
	cs, err := NewCalGraySpace([3]float32{0, 1, 0}, [3]float32{0, 0, 0}, 2.2)
	if err != nil {
		t.Fatalf("NewCalGraySpace: %v", err)
	}
	dest := make([]byte, 3)
	cs.GetRgbItem([]byte{128}, 0, dest, 0) // 128/255 ~= 0.5
	// v = 295.8*cbrt(0.502^2.2) - 40.8 ~= 137.6
	if dest[0] < 137 || dest[0] > 139 {
		t.Fatalf("CalGray(0.5) = %d, want ~138", dest[0])
	}
	if dest[0] != dest[1] || dest[1] != dest[2] {
		t.Fatalf("CalGray output not gray: %v", dest)
	}
}

func TestCalGrayInvariants(t *testing.T) {
	if _, err := NewCalGraySpace([3]float32{0, 0, 0}, [3]float32{0, 0, 0}, 1); err == nil {
		t.Fatal("expected error for YW != 1")
	}

	cs, err := NewCalGraySpace([3]float32{0, 1, 0}, [3]float32{-1, 0, 0}, 0.5)
	if err != nil {
		t.Fatalf("NewCalGraySpace: %v", err)
	}
	if cs.BlackPoint != ([3]float32{0, 0, 0}) {
		t.Fatalf("negative blackpoint component should reset to (0,0,0), got %v", cs.BlackPoint)
	}
	if cs.Gamma != 1 {
		t.Fatalf("gamma < 1 should be forced to 1, got %v", cs.Gamma)
	}
}

func TestCalRGBIdentityNearWhite(t *testing.T) {
	cs, err := NewCalRGBSpace(
		[3]float32{0.9505, 1, 1.0888},
		[3]float32{0, 0, 0},
		[3]float32{1, 1, 1},
		defaultCalRGBMatrix,
	)
	if err != nil {
		t.Fatalf("NewCalRGBSpace: %v", err)
	}
	dest := make([]byte, 3)
	cs.GetRgbItem([]byte{255, 255, 255}, 0, dest, 0)
	for i, b := range dest {
		if b < 254 {
			t.Fatalf("CalRGB(1,1,1) channel %d = %d, want ~255", i, b)
		}
	}
}

func TestCalRGBInvariants(t *testing.T) {
	if _, err := NewCalRGBSpace([3]float32{0, 0, 0}, [3]float32{0, 0, 0}, [3]float32{1, 1, 1}, defaultCalRGBMatrix); err == nil {
		t.Fatal("expected error for YW != 1")
	}

	cs, err := NewCalRGBSpace(
		[3]float32{0, 1, 0},
		[3]float32{0, -1, 0},
		[3]float32{-1, 1, 1},
		defaultCalRGBMatrix,
	)
	if err != nil {
		t.Fatalf("NewCalRGBSpace: %v", err)
	}
	if cs.BlackPoint != ([3]float32{0, 0, 0}) {
		t.Fatalf("negative blackpoint component should reset to (0,0,0), got %v", cs.BlackPoint)
	}
	if cs.Gamma != ([3]float32{1, 1, 1}) {
		t.Fatalf("negative gamma component should reset to (1,1,1), got %v", cs.Gamma)
	}
}
