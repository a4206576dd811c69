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

// Package paths contains functions to prepare paths to gopher2a03 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If a directory named ".gopher2a03" is present in the program's current
// directory then that is the base path. Otherwise the user's config
// directory, as reported by os.UserConfigDir(), is used. On a modern Linux
// system the example above returns:
//
//	/home/user/.config/gopher2a03/preferences
package paths
