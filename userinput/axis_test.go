// This file is part of frameinput.
//
// frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with frameinput.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import (
	"testing"

	"github.com/jetsetilly/frameinput/test"
)

func TestDeadZone(t *testing.T) {
	cfg, err := NewConfig()
	test.DemandSuccess(t, err)

	for _, dz := range []float64{0, 1, 10, 25.5, 100} {
		test.DemandSuccess(t, cfg.ControllerDeadZone.Set(dz))
		threshold := cfg.deadZone()

		prev := float32(0)
		for raw := 0; raw <= RawAxisMax; raw++ {
			v := quantize(applyDeadZone(int16(raw), threshold))
			n := quantize(applyDeadZone(int16(-raw), threshold))

			if raw < threshold || raw == 0 {
				test.DemandEquality(t, v, 0, dz, raw)
				test.DemandEquality(t, n, 0, dz, raw)
				continue
			}

			// output is monotonic outside of the dead zone
			test.DemandSuccess(t, v > prev, dz, raw)
			test.DemandEquality(t, n, -v, dz, raw)
			prev = v
		}
	}
}

func TestDeadZoneThreshold(t *testing.T) {
	cfg, err := NewConfig()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cfg.ControllerDeadZone.Set(10.0))
	test.ExpectEquality(t, cfg.deadZone(), 3276)
	test.ExpectEquality(t, applyDeadZone(3000, cfg.deadZone()), 0)
	test.ExpectEquality(t, applyDeadZone(-32768, cfg.deadZone()), -32768)
	test.ExpectApproximate(t, quantize(RawAxisMax), 100, 0.001)
}
