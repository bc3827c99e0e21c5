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

package codec

// Segment is a contiguous run of memory. Data[i] is the value at address
// Start+i.
type Segment struct {
	Start uint16
	Data  []byte
}

// EncodeMemoryFrame creates the binary frame for a segment of memory. The
// frame is the start address, most significant byte first, followed by the
// data. A segment with no data is encoded as just the start address.
func EncodeMemoryFrame(seg Segment) []byte {
	f := make([]byte, 2+len(seg.Data))
	f[0] = byte(seg.Start >> 8)
	f[1] = byte(seg.Start)
	copy(f[2:], seg.Data)
	return f
}

// DecodeMemoryFrame is the inverse of EncodeMemoryFrame. The ok value is false
// if the frame is too short to contain the start address.
func DecodeMemoryFrame(f []byte) (Segment, bool) {
	if len(f) < 2 {
		return Segment{}, false
	}
	return Segment{
		Start: uint16(f[0])<<8 | uint16(f[1]),
		Data:  f[2:],
	}, true
}
