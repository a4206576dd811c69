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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
)

// List of valid Format values.
const (
	FormatAuto = "AUTO"
	FormatRaw  = "RAW"
	FormatINES = "INES"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".PRG", ".NES"}

// Loader is used to specify the program data to load into memory.
type Loader struct {
	// filename of the data to load.
	Filename string

	// one of the Format values. FormatAuto indicates that the format should
	// be decided by looking at the data
	Format string

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   FormatAuto,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		cl.Format = format
		return cl
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".NES":
		cl.Format = FormatINES
	case ".BIN", ".ROM", ".PRG":
		cl.Format = FormatRaw
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := filepath.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, filepath.Ext(cl.Filename))
	return shortName
}

// Load the data. Loader filenames with a valid scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
//
// If the Format field is FormatAuto the data is inspected and the field set
// to either FormatINES or FormatRaw.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "no data")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Hash = hash

	if cl.Format == FormatAuto || cl.Format == "" {
		if bytes.HasPrefix(cl.Data, inesMagic) {
			cl.Format = FormatINES
		} else {
			cl.Format = FormatRaw
		}
	}

	logger.Logf(logger.Allow, "cartridgeloader", "%s: %d bytes (%s) sha1 %s", cl.ShortName(), len(cl.Data), cl.Format, cl.Hash)

	return nil
}
