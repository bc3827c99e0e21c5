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

// Package keys maps the key names sent by a client to VirtualKey codes.
//
// A Mapping is built once with NewMapping() from a keyboard layout, described
// by the Capability interface, and is read-only afterwards. Single character
// names come from the layout. Named keys, for example "ArrowLeft" or "F1",
// follow the names used by a browser's KeyboardEvent.
//
// When two keys produce the same name the earlier key wins.
package keys
