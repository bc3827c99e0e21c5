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

package prefs

import (
	"sort"
	"strings"
	"sync"
)

// separator between key and value in a command line group. the Disk type
// uses a spaced version of the same separator.
const commandLineSeparator = "::"

// commandLine is a stack of override groups. only the top group is consulted.
type commandLine struct {
	crit   sync.Mutex
	groups []map[string]string
}

var overrides commandLine

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()
	return len(overrides.groups)
}

// PushCommandLineStack parses an override string and adds it as a new group.
// The string is a list of key/value pairs separated by semi-colons. The key
// and value are separated by a double colon:
//
//	debugger.updateInterval::500ms; web.address::localhost:8000
//
// Pairs without a separator are ignored. Values in the group override values
// loaded by Disk.Load().
func PushCommandLineStack(s string) {
	group := make(map[string]string)
	for _, p := range strings.Split(s, ";") {
		// only the first separator counts. network addresses contain colons
		if k, v, ok := strings.Cut(p, commandLineSeparator); ok {
			group[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	overrides.crit.Lock()
	defer overrides.crit.Unlock()
	overrides.groups = append(overrides.groups, group)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). The overrides in the group that were never taken by
// a Disk are returned in the same format that PushCommandLineStack() accepts,
// sorted by key.
func PopCommandLineStack() string {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	if len(overrides.groups) == 0 {
		return ""
	}

	top := overrides.groups[len(overrides.groups)-1]
	overrides.groups = overrides.groups[:len(overrides.groups)-1]

	unused := make([]string, 0, len(top))
	for k, v := range top {
		unused = append(unused, k+commandLineSeparator+v)
	}
	sort.Strings(unused)

	return strings.Join(unused, "; ")
}

// GetCommandLinePref takes the value for the key from the top group. A value
// can only be taken once.
func GetCommandLinePref(key string) (bool, Value) {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	if len(overrides.groups) == 0 {
		return false, nil
	}

	top := overrides.groups[len(overrides.groups)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}
