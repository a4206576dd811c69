// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher2a03/paths"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestPaths(t *testing.T) {
	// a base directory in the current directory takes priority
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopher2a03", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher2a03/foo/bar/baz")

	_, err = os.Stat(".gopher2a03/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher2a03/baz")
}
