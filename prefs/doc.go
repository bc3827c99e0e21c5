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

// Package prefs facilitates the storage of preferential values in the Xray
// system. The typed values (Bool, Int, String and Duration) are safe to read
// and write from any goroutine.
//
// A Disk instance collects named values and stores them in a plain text file
// with one "key :: value" entry per line. Values are loaded with Disk.Load()
// and saved with Disk.Save(). The Disk.Watch() function reloads the file when
// it is changed by another program and the post hooks of each value (see
// SetHookPost()) can be used to push the new value into the running system.
//
// The command line stack (see PushCommandLineStack()) allows a set of values
// to be specified on the command line. These values take precedence over the
// values in the prefs file but are never saved to disk.
package prefs
