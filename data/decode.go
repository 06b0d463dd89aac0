/*
Copyright © 2025 Daniel Rivas <danielrivasmd@gmail.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package data

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"olympos.io/encoding/edn"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

type decoder func([]byte) (Document, error)

var decoders = map[string]decoder{
	".toml": decodeTOML,
	".edn":  decodeEDN,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

// Formats lists the file extensions Resolve picks up, sorted.
func Formats() []string {
	return slices.Sorted(maps.Keys(decoders))
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func decodeTOML(raw []byte) (Document, error) {
	var doc Document
	md, err := toml.Decode(string(raw), &doc)
	if err != nil {
		return Document{}, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Document{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return doc, nil
}

// decodeEDN reads a top level map such as {:categories [...] :updates [...]}
func decodeEDN(raw []byte) (Document, error) {
	var doc Document
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, nil
	}
	if err := edn.Unmarshal(raw, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func decodeYAML(raw []byte) (Document, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && strings.Contains(err.Error(), "not found in type") {
			return Document{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(typeErr.Errors, "; "))
		}
		return Document{}, err
	}
	return doc, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
