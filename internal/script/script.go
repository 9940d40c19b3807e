// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package script loads YAML operation scripts and replays them against a
// dynarr.Array[any].
package script

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Operation names accepted in a step.
const (
	OpPush     = "push"
	OpPop      = "pop"
	OpShift    = "shift"
	OpUnshift  = "unshift"
	OpReverse  = "reverse"
	OpSort     = "sort"
	OpSplice   = "splice"
	OpSlice    = "slice"
	OpConcat   = "concat"
	OpJoin     = "join"
	OpToString = "tostring"
	OpGet      = "get"
	OpSet      = "set"
	OpDelete   = "delete"
	OpLength   = "length"
)

// Comparator names accepted by the sort step.
const (
	CmpString      = "string"
	CmpNumeric     = "numeric"
	CmpNumericDesc = "numeric-desc"
)

// DefaultSeparator is used by join steps without an argument.
const DefaultSeparator = ","

var ops = []string{
	OpPush, OpPop, OpShift, OpUnshift, OpReverse, OpSort, OpSplice, OpSlice,
	OpConcat, OpJoin, OpToString, OpGet, OpSet, OpDelete, OpLength,
}

// Script is a starting array and the operations to apply to it.
type Script struct {
	Name string `yaml:"name"`
	// Init is the literal starting sequence. Nested sequences become
	// nested arrays.
	Init []any `yaml:"init"`
	// Holes lists indices of Init that start out as holes; the value
	// written there in Init is ignored.
	Holes []int `yaml:"holes"`
	// Length, when set, is applied after Init; a larger value pads with
	// holes.
	Length    *float64 `yaml:"length"`
	Separator string   `yaml:"separator"`
	Steps     []Step   `yaml:"steps"`
}

// Step is one operation.
type Step struct {
	Op   string `yaml:"op"`
	Args []any  `yaml:"args"`
	// Cmp selects the comparator of a sort step.
	Cmp string `yaml:"cmp"`
}

// Default returns an empty script with default settings.
func Default() *Script {
	return &Script{Separator: DefaultSeparator}
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks hole indices and the operation and comparator names.
func (s *Script) Validate() error {
	for _, h := range s.Holes {
		if h < 0 || h >= len(s.Init) {
			return fmt.Errorf("hole %d outside init", h)
		}
	}
	for i, st := range s.Steps {
		if !slices.Contains(ops, st.Op) {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
		switch st.Cmp {
		case "", CmpString, CmpNumeric, CmpNumericDesc:
		default:
			return fmt.Errorf("step %d: unknown comparator %q", i, st.Cmp)
		}
		if st.Cmp != "" && st.Op != OpSort {
			return fmt.Errorf("step %d: cmp is only valid for %s", i, OpSort)
		}
	}
	return nil
}
