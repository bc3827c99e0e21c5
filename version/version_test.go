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

package version_test

import (
	"testing"

	"github.com/trs-io/xray/curated"
	"github.com/trs-io/xray/version"
	"github.com/trs-io/xray/test"
)

func TestVersion(t *testing.T) {
	v, r, _ := version.Version()
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")
}

func TestCompatibleProtocol(t *testing.T) {
	ok, err := version.CompatibleProtocol("")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	ok, err = version.CompatibleProtocol(version.Protocol)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	ok, err = version.CompatibleProtocol("1.0.0")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	ok, err = version.CompatibleProtocol("2.0.0")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	ok, err = version.CompatibleProtocol("0.9.0")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	_, err = version.CompatibleProtocol("not-a-version")
	test.ExpectSuccess(t, curated.Is(err, version.BadProtocol))
}
