// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// settings holds the REPL's configuration variables, editable at runtime
// with the "set" command.
type settings struct {
	Origin  uint16 `doc:"default origin address for assembly"`
	Verbose bool   `doc:"trace both assembler passes"`
	OutDir  string `doc:"directory written binaries are saved to"`
}

func newSettings() *settings {
	return &settings{
		Origin:  0,
		Verbose: false,
		OutDir:  ".",
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := settingsType.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Display writes every setting and its current value to w.
func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var line string
		switch f.kind {
		case reflect.String:
			line = fmt.Sprintf("    %-16s \"%s\"", f.name, v.String())
		case reflect.Uint16:
			line = fmt.Sprintf("    %-16s $%04X", f.name, uint16(v.Uint()))
		default:
			line = fmt.Sprintf("    %-16s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-32s (%s)\n", line, f.doc)
	}
}

// Set assigns value to the setting named key, converting types where
// possible. key is matched as an unambiguous prefix.
func (s *settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	vIn := reflect.ValueOf(value)
	if (f.kind == reflect.String && vIn.Type().Kind() != reflect.String) ||
		(f.kind != reflect.String && vIn.Type().Kind() == reflect.String) ||
		!vIn.Type().ConvertibleTo(f.typ) {
		return errors.New("invalid type")
	}

	reflect.ValueOf(s).Elem().Field(f.index).Set(vIn.Convert(f.typ))
	return nil
}
