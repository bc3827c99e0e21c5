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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a particular pattern. Sentinal patterns are stored as
// const strings in the package that raises them. For example, the breakpoints
// package:
//
//	const TableFull = "breakpoints: table full (%d entries)"
//
//	if curated.Is(err, breakpoints.TableFull) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(breakpoints.TableFull, 128)
//	f := curated.Errorf("debugger: %v", e)
//	curated.Has(f, breakpoints.TableFull) // true
//	curated.Is(f, breakpoints.TableFull)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'. We can think of the difference as
// being 'expected' and 'unexpected' depending on how we choose to handle the
// result of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of chains
// as being composed of parts separted by the sub-string ': ' as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
package curated
