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
	"time"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/prefs"
)

// Config holds the sensitivity values of the input subsystem. The values
// can be changed at any time between frames.
type Config struct {
	MouseSens      prefs.Float
	MouseSensScale prefs.Float
	MouseInvert    prefs.Bool

	ControllerSens prefs.Float

	// percentage of the raw axis range, centred on zero, that is treated as
	// no input. valid values are between 0 and 100
	ControllerDeadZone prefs.Float

	// milliseconds without mouse movement before a stop event
	MouseStopDelay prefs.Int
}

// preference keys. these are the keys used with the prefs command line stack
const (
	PrefMouseSens          = "input.mouse.sens"
	PrefMouseSensScale     = "input.mouse.sensscale"
	PrefMouseInvert        = "input.mouse.invert"
	PrefControllerSens     = "input.controller.sens"
	PrefControllerDeadZone = "input.controller.deadzone"
	PrefMouseStopDelay     = "input.mouse.stopdelay"
)

// NewConfig is the preferred method of initialisation for the Config type.
// Values on the prefs command line stack take priority over the defaults.
func NewConfig() (*Config, error) {
	cfg := &Config{}

	cfg.ControllerDeadZone.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0 || f > 100 {
			return curated.Errorf("controller dead zone must be between 0 and 100 (%v)", f)
		}
		return nil
	})
	cfg.MouseStopDelay.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("mouse stop delay cannot be negative (%v)", v)
		}
		return nil
	})

	inits := []struct {
		p   prefs.Pref
		key string
		def prefs.Value
	}{
		{p: &cfg.MouseSens, key: PrefMouseSens, def: 1.0},
		{p: &cfg.MouseSensScale, key: PrefMouseSensScale, def: 1.0},
		{p: &cfg.MouseInvert, key: PrefMouseInvert, def: false},
		{p: &cfg.ControllerSens, key: PrefControllerSens, def: 1.0},
		{p: &cfg.ControllerDeadZone, key: PrefControllerDeadZone, def: 0.0},
		{p: &cfg.MouseStopDelay, key: PrefMouseStopDelay, def: 25},
	}

	for _, i := range inits {
		if err := prefs.Init(i.p, i.key, i.def); err != nil {
			return nil, curated.Errorf("config: %s: %v", i.key, err)
		}
	}

	return cfg, nil
}

// the raw axis value below which input is ignored
func (cfg *Config) deadZone() int {
	return int(cfg.ControllerDeadZone.Get().(float64) * (RawAxisMax / 100.0))
}

func (cfg *Config) mouseStopDelay() time.Duration {
	return time.Duration(cfg.MouseStopDelay.Get().(int)) * time.Millisecond
}
