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

// Package dirty records the span of memory that has been written to since the
// last time the span was consumed. The span is the smallest contiguous range
// that contains every written address, so a client only needs to be sent the
// bytes in that range rather than the entire address space.
package dirty

import "sync"

// AddressSpace is the number of addressable bytes.
const AddressSpace = 0x10000

// Range records written addresses. The zero value is not ready for use; use
// NewRange().
type Range struct {
	crit sync.Mutex

	// start > end indicates the empty range
	start uint32
	end   uint32
}

// NewRange is the preferred method of initialisation for the Range type.
func NewRange() *Range {
	r := &Range{}
	r.reset()
	return r
}

// start is one beyond the last address so that the empty range can't be
// confused with a write to the last address
func (r *Range) reset() {
	r.start = AddressSpace
	r.end = 0
}

// RecordWrite widens the range to include the address.
func (r *Range) RecordWrite(addr uint16) {
	r.crit.Lock()
	defer r.crit.Unlock()

	a := uint32(addr)
	if a < r.start {
		r.start = a
	}
	if a > r.end {
		r.end = a
	}
}

// ConsumeAndReset returns the part of the range that falls inside the query
// window, as a start address and a length, and then empties the range. The
// window starts at queryStart and is queryLength bytes long. The window is
// truncated at the end of the address space.
//
// If there is no overlap between the window and the range then the returned
// length is zero and the returned start is queryStart.
//
// If force is true, the entire window is returned regardless of the range.
// The range is still emptied.
func (r *Range) ConsumeAndReset(queryStart uint16, queryLength uint32, force bool) (uint16, uint32) {
	r.crit.Lock()
	defer r.crit.Unlock()

	start, end := r.start, r.end
	r.reset()

	winStart := uint32(queryStart)
	winEnd := winStart + queryLength
	if winEnd > AddressSpace {
		winEnd = AddressSpace
	}

	if force {
		return queryStart, winEnd - winStart
	}

	// empty range
	if start > end {
		return queryStart, 0
	}

	// clamp inclusive range to the exclusive window end
	if start < winStart {
		start = winStart
	}
	end++
	if end > winEnd {
		end = winEnd
	}

	if end <= start {
		return queryStart, 0
	}

	return uint16(start), end - start
}
