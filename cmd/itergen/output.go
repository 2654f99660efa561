// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type format string

const (
	formatText format = "text"
	formatYAML format = "yaml"
)

// tupleWriter prints one generated value at a time. A value is either
// a tuple or, for the infinite kinds, a scalar.
type tupleWriter interface {
	WriteTuple(tuple []interface{}) error
	WriteScalar(v interface{}) error
}

func newTupleWriter(f format, w io.Writer) (tupleWriter, error) {
	switch f {
	case formatText:
		return &textWriter{w: w}, nil
	case formatYAML:
		return &yamlWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %s, expected %s or %s", f, formatText, formatYAML)
	}
}

type textWriter struct {
	w io.Writer
}

func (tw *textWriter) WriteTuple(tuple []interface{}) error {
	strs := make([]string, 0, len(tuple))
	for _, v := range tuple {
		strs = append(strs, fmt.Sprint(v))
	}
	_, err := fmt.Fprintf(tw.w, "(%s)\n", strings.Join(strs, ", "))
	return err
}

func (tw *textWriter) WriteScalar(v interface{}) error {
	_, err := fmt.Fprintf(tw.w, "%v\n", v)
	return err
}

// yamlWriter emits every value as an item of a single top-level YAML
// sequence, so the output can be streamed.
type yamlWriter struct {
	w io.Writer
}

func (yw *yamlWriter) write(item interface{}) error {
	out, err := yaml.Marshal([]interface{}{item})
	if err != nil {
		return fmt.Errorf("failed to marshal %v: %w", item, err)
	}
	_, err = yw.w.Write(out)
	return err
}

func (yw *yamlWriter) WriteTuple(tuple []interface{}) error {
	return yw.write(tuple)
}

func (yw *yamlWriter) WriteScalar(v interface{}) error {
	return yw.write(v)
}
