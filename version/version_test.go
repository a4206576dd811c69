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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestFromBuildInfo(t *testing.T) {
	none := func() (*debug.BuildInfo, bool) {
		return nil, false
	}
	i := fromBuildInfo("", none)
	test.ExpectEquality(t, i.Version, "local")
	test.ExpectFailure(t, i.Release)
	test.ExpectEquality(t, i.String(), "Gopher2A03 local (no revision information)")

	dirty := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		}}, true
	}
	i = fromBuildInfo("", dirty)
	test.ExpectEquality(t, i.Version, "unreleased")
	test.ExpectEquality(t, i.Revision, "abc123+dirty")

	i = fromBuildInfo("v0.1.0", dirty)
	test.ExpectSuccess(t, i.Release)
	test.ExpectEquality(t, i.String(), "Gopher2A03 v0.1.0")
}
