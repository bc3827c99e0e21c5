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

package version

import (
	semver "github.com/Masterminds/semver/v3"
	"github.com/trs-io/xray/curated"
)

// Protocol is the version of the websocket debug protocol spoken by the
// server. It is reported in the status context sent to every client.
const Protocol = "1.2.0"

// protocolConstraint is the range of client protocol versions the server
// can talk to.
const protocolConstraint = "^1.0.0"

// Sentinal error patterns.
const (
	BadProtocol = "version: bad protocol version (%s): %v"
)

// CompatibleProtocol checks whether a client's protocol version can talk to
// this server. An empty version string is taken to mean an old client that
// doesn't announce its version and is accepted.
func CompatibleProtocol(client string) (bool, error) {
	if client == "" {
		return true, nil
	}

	v, err := semver.NewVersion(client)
	if err != nil {
		return false, curated.Errorf(BadProtocol, client, err)
	}

	c, err := semver.NewConstraint(protocolConstraint)
	if err != nil {
		return false, curated.Errorf(BadProtocol, protocolConstraint, err)
	}

	return c.Check(v), nil
}
