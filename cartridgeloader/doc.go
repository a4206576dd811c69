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

// Package cartridgeloader is used to specify the program data that is to be
// loaded into the emulated memory.
//
// When the data is ready to be loaded, the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// As well as the filename, the Loader type allows the format of the data to
// be specified, if required. The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/nestest.nes",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the Format field automatically according to
// the filename extension.
//
// Once loaded, data in the iNES format can be parsed with the ParseINES()
// function. Only mapper 0 (NROM) images are supported.
package cartridgeloader
