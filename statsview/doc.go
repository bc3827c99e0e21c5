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

// Package statsview offers a HTTP server running locally with runtime
// statistics, which is useful for watching the goroutines and memory of a
// long running debug session. The server is only compiled in when the
// statsview build constraint is present. Underlying funcionality provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12080/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12080/debug/pprof/
package statsview

// Address of the stats server. Defined in every build so that it can be
// mentioned in help text.
const Address = "localhost:12080"

// Path to the graphical statistics page on the server.
const Path = "/debug/statsview"

// URL returns the address of the graphical statistics page.
func URL() string {
	return "http://" + Address + Path
}
