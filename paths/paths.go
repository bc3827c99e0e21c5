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

package paths

import (
	"os"
	"path/filepath"
)

// name of the resource directory in the current working directory.
const baseResourcePath = ".xray"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path. The sub-path is created if it doesn't
// exist. The file argument is not checked and may be the empty string.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

// getBasePath returns baseResourcePath joined with subPth, creating the
// directory if necessary.
func getBasePath(subPth string) (string, error) {
	root := baseResourcePath

	if _, err := os.Stat(baseResourcePath); err != nil {
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		root = filepath.Join(cfg, baseResourcePath[1:])
	}

	pth := filepath.Join(root, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
