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

// Package version reports the version of the application, using the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher2A03"

// number is set with the linker when building a release. for example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher2a03/version.number=v0.1.0"
var number string

// Info describes the version of the running program.
type Info struct {
	// the release number, "unreleased" if the program has been built from a
	// repository without a release number, or "local" if there is no
	// version information at all
	Version string

	// the vcs revision, suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// true if Version is a release number
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

var info = sync.OnceValue(func() Info {
	return fromBuildInfo(number, debug.ReadBuildInfo)
})

// Get returns the version information.
func Get() Info {
	return info()
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var vcs bool
	var revision string
	var modified bool

	if bi, ok := read(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	i := Info{
		Version:  number,
		Revision: revision,
		Release:  number != "",
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	if !i.Release {
		if vcs {
			i.Version = "unreleased"
		} else {
			i.Version = "local"
		}
	}

	return i
}
