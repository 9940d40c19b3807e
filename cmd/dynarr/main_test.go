// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalSplice(t *testing.T) {
	out, err := execute(t, "eval", "--init", "angel,clown,mandarin,surgeon", "splice", "2", "0", "drum")
	require.NoError(t, err)
	assert.Contains(t, out, "final: [angel,clown,drum,mandarin,surgeon] length=5")
}

func TestEvalSortNumeric(t *testing.T) {
	out, err := execute(t, "eval", "--init", "4,2,5,1,3", "sort", "numeric")
	require.NoError(t, err)
	assert.Contains(t, out, "final: [1,2,3,4,5] length=5")
}

func TestEvalSeparator(t *testing.T) {
	out, err := execute(t, "eval", "--init", "a,b", "--sep", " | ", "push", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "final: [a | b | c] length=3")
}

func TestEvalInitHoles(t *testing.T) {
	out, err := execute(t, "eval", "--init", "a,,b", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "<absent>")
	assert.Contains(t, out, "final: [a,,b] length=3")

	s, err := evalScript("a,,b,", []string{"length"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, s.Holes)
	assert.Len(t, s.Init, 4)
}

func TestEvalUnknownOp(t *testing.T) {
	_, err := execute(t, "eval", "explode")
	assert.ErrorContains(t, err, "unknown op")
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	body := "name: demo\ninit: [1, 2]\nsteps:\n  - op: push\n    args: [3]\n  - op: length\n    args: [10]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "final: [1,2,3,,,,,,,] length=10")
}

func TestRunScriptFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	body := "init: [1]\nsteps:\n  - op: length\n    args: [-1]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := execute(t, "run", path)
	assert.ErrorContains(t, err, "invalid array length")
}

func TestRunMissingArgument(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}
