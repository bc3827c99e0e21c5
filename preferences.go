// This file is part of Xray.
//
// Xray is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Xray is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Xray.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"time"

	"github.com/trs-io/xray/debugger"
	"github.com/trs-io/xray/debugger/scheduler"
	"github.com/trs-io/xray/hardware"
	"github.com/trs-io/xray/outbound"
	"github.com/trs-io/xray/paths"
	"github.com/trs-io/xray/prefs"
	"github.com/trs-io/xray/virtualio"
	"github.com/trs-io/xray/web"
)

const prefsFile = "preferences"

// default time the debugger waits for the outbound channel
const defaultDebugSendWait = 50 * time.Millisecond

// preferences for all parts of the application. values are pushed into the
// running components by the post hooks whenever they change, including when
// the prefs file is reloaded
type preferences struct {
	dsk *prefs.Disk

	updateInterval prefs.Duration
	tickInterval   prefs.Duration
	debugSendWait  prefs.Duration
	viCadence      prefs.Duration
	viSendWait     prefs.Duration
	address        prefs.String
	throttle       prefs.Bool
}

func newPreferences(path string) (*preferences, error) {
	if path == "" {
		var err error
		path, err = paths.ResourcePath("", prefsFile)
		if err != nil {
			return nil, err
		}
	}

	dsk, err := prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p := &preferences{dsk: dsk}

	for k, v := range map[string]prefsEntry{
		"debugger.updateInterval": {&p.updateInterval, scheduler.DefaultInterval},
		"debugger.tickInterval":   {&p.tickInterval, debugger.DefaultTickInterval},
		"debugger.sendWait":       {&p.debugSendWait, defaultDebugSendWait},
		"virtualio.cadence":       {&p.viCadence, virtualio.DefaultCadence},
		"virtualio.sendWait":      {&p.viSendWait, virtualio.DefaultSendWait},
		"web.address":             {&p.address, web.DefaultAddress},
		"hardware.throttle":       {&p.throttle, true},
	} {
		if err := v.p.Set(v.value); err != nil {
			return nil, err
		}
		if err := dsk.Add(k, v.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

type prefsEntry struct {
	p interface {
		Set(prefs.Value) error
		String() string
		Get() prefs.Value
		Reset() error
	}
	value prefs.Value
}

// wire the preferences to the components. the current values are pushed
// immediately
func (p *preferences) wire(session *debugger.Session, out *outbound.Channel, vi *virtualio.Channel, m *hardware.Machine) error {
	p.updateInterval.SetHookPost(func(v prefs.Value) error {
		session.SetUpdateInterval(v.(time.Duration))
		return nil
	})
	p.tickInterval.SetHookPost(func(v prefs.Value) error {
		session.SetTickInterval(v.(time.Duration))
		return nil
	})
	p.debugSendWait.SetHookPost(func(v prefs.Value) error {
		out.SetWait(v.(time.Duration))
		return nil
	})
	p.viCadence.SetHookPost(func(v prefs.Value) error {
		vi.SetCadence(v.(time.Duration))
		return nil
	})
	p.viSendWait.SetHookPost(func(v prefs.Value) error {
		vi.SetSendWait(v.(time.Duration))
		return nil
	})
	p.throttle.SetHookPost(func(v prefs.Value) error {
		m.SetThrottle(v.(bool))
		return nil
	})

	for _, d := range []*prefs.Duration{&p.updateInterval, &p.tickInterval, &p.debugSendWait, &p.viCadence, &p.viSendWait} {
		if err := d.Set(d.Load()); err != nil {
			return err
		}
	}
	return p.throttle.Set(p.throttle.Get())
}
