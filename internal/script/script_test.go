// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "fish.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fish", s.Name)
	assert.Equal(t, DefaultSeparator, s.Separator)
	assert.Equal(t, []any{"angel", "clown", "mandarin", "surgeon"}, s.Init)
	require.Len(t, s.Steps, 8)
	assert.Equal(t, Step{Op: OpSplice, Args: []any{2, 0, "drum"}}, s.Steps[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownOp(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: explode\n"))
	assert.ErrorContains(t, err, `unknown op "explode"`)
}

func TestParseRejectsComparator(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: sort\n    cmp: random\n"))
	assert.ErrorContains(t, err, `unknown comparator "random"`)

	_, err = Parse([]byte("steps:\n  - op: push\n    cmp: numeric\n"))
	assert.ErrorContains(t, err, "cmp is only valid for sort")
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("steps: [\n"))
	assert.Error(t, err)
}

func TestParseLength(t *testing.T) {
	s, err := Parse([]byte("init: [1]\nlength: 3\n"))
	require.NoError(t, err)
	require.NotNil(t, s.Length)
	assert.Equal(t, 3.0, *s.Length)
}

func TestParseHoles(t *testing.T) {
	s, err := Parse([]byte("init: [a, ~, b]\nholes: [1]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Holes)

	_, err = Parse([]byte("init: [a]\nholes: [1]\n"))
	assert.ErrorContains(t, err, "hole 1 outside init")
}
