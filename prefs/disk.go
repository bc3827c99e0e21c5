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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/logger"
)

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while xray is running ***"

// Sentinal error patterns raised by the Disk type.
const (
	DuplicateKey  = "prefs: duplicate key (%s)"
	NoPrefsFile   = "prefs: no prefs file (%s)"
	InvalidPrefs  = "prefs: not a valid prefs file (%s)"
	LoadPrefsFile = "prefs: load: %v"
	SavePrefsFile = "prefs: save: %v"
)

// separator between key and value on each line of a prefs file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the location of the prefs file on disk.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. The key
// value is used as the key in the prefs file and must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	return nil
}

// Reset all entries added to the Disk instance to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the existing file that
// are not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	// start with whatever is already in the file
	lines, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return curated.Errorf(SavePrefsFile, err)
	}

	for k, p := range dsk.entries {
		lines[k] = p.String()
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, lines[k]))
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(SavePrefsFile, err)
	}
	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(SavePrefsFile, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack (see
// PushCommandLineStack()) override values in the file.
//
// If saveOnFail is true and the prefs file does not exist, the current values
// are saved to create the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()

	lines, err := dsk.read()
	if err != nil {
		dsk.crit.Unlock()
		if curated.Is(err, NoPrefsFile) {
			if saveOnFail {
				if err := dsk.Save(); err != nil {
					return err
				}
			}
			return dsk.applyCommandLine()
		}
		return curated.Errorf(LoadPrefsFile, err)
	}

	for k, v := range lines {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				dsk.crit.Unlock()
				return curated.Errorf(LoadPrefsFile, err)
			}
		}
	}

	dsk.crit.Unlock()

	return dsk.applyCommandLine()
}

func (dsk *Disk) applyCommandLine() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadPrefsFile, err)
			}
		}
	}
	return nil
}

// read the prefs file and return the key/value pairs. the critical section
// must be held by the caller.
func (dsk *Disk) read() (map[string]string, error) {
	lines := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lines, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return lines, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	scanner.Scan()
	if scanner.Text() != WarningBoilerPlate {
		return lines, curated.Errorf(InvalidPrefs, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		lines[strings.TrimSpace(k)] = v
	}

	return lines, scanner.Err()
}

// Watch reloads the prefs file whenever it changes on disk. The parent
// directory is watched rather than the file because many editors replace the
// file instead of writing to it.
//
// Watch blocks until the context is cancelled.
func (dsk *Disk) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(dsk.path)); err != nil {
		return err
	}

	target := filepath.Clean(dsk.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := dsk.Load(false); err != nil {
				logger.Log(logger.Allow, "prefs", err)
				continue
			}
			logger.Logf(logger.Allow, "prefs", "reloaded %s", dsk.path)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Log(logger.Allow, "prefs", err)
		}
	}
}
