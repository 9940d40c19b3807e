// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"code.hybscloud.com/dynarr"
)

// Absent is how a missing value is shown in a Result.
const Absent = "<absent>"

// Result records one executed step.
type Result struct {
	Step int
	Op   string
	// Value is the string form of what the operation returned.
	Value string
	// Length is the array length after the step.
	Length int
	// Array is the array after the step, joined with the script separator.
	Array string
}

// Runner replays scripts.
type Runner struct {
	log *zap.Logger
}

// NewRunner returns a Runner that logs to log. A nil log discards output.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Build returns the starting array of s.
func (r *Runner) Build(s *Script) (*dynarr.Array[any], error) {
	a := FromSequence(s.Init)
	for _, h := range s.Holes {
		a.Delete(h)
	}
	if s.Length != nil {
		n, err := dynarr.ToLength(*s.Length)
		if err != nil {
			return nil, err
		}
		if err := a.SetLen(n); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Run builds the starting array of s and applies every step in order.
// It stops at the first failing step.
func (r *Runner) Run(s *Script) (*dynarr.Array[any], []Result, error) {
	a, err := r.Build(s)
	if err != nil {
		return nil, nil, fmt.Errorf("init: %w", err)
	}
	log := r.log.With(zap.String("script", s.Name))
	log.Debug("Script started", zap.Int("length", a.Len()), zap.Int("steps", len(s.Steps)))

	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		v, err := Apply(a, st)
		if err != nil {
			log.Warn("Step failed", zap.Int("step", i), zap.String("op", st.Op), zap.Error(err))
			return a, results, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		res := Result{Step: i, Op: st.Op, Value: v, Length: a.Len(), Array: a.Join(s.Separator)}
		log.Debug("Step applied",
			zap.Int("step", i),
			zap.String("op", st.Op),
			zap.String("value", res.Value),
			zap.Int("length", res.Length))
		results = append(results, res)
	}
	log.Info("Script finished", zap.Int("steps", len(results)), zap.Int("length", a.Len()))
	return a, results, nil
}

// Apply executes one step against a and returns the string form of its
// result.
func Apply(a *dynarr.Array[any], st Step) (string, error) {
	switch st.Op {
	case OpPush:
		return strconv.Itoa(a.Push(elements(st.Args)...)), nil
	case OpUnshift:
		return strconv.Itoa(a.Unshift(elements(st.Args)...)), nil
	case OpPop:
		return show(a.Pop()), nil
	case OpShift:
		return show(a.Shift()), nil
	case OpReverse:
		return a.Reverse().String(), nil
	case OpSort:
		return a.Sort(comparator(st.Cmp)).String(), nil
	case OpSplice:
		return splice(a, st.Args)
	case OpSlice:
		return slice(a, st.Args)
	case OpConcat:
		parts := make([]dynarr.Part[any], len(st.Args))
		for i, v := range st.Args {
			parts[i] = Part(v)
		}
		return a.Concat(parts...).String(), nil
	case OpJoin:
		sep := DefaultSeparator
		if len(st.Args) > 0 {
			sep = dynarr.Format(st.Args[0])
		}
		return a.Join(sep), nil
	case OpToString:
		return a.String(), nil
	case OpGet:
		i, err := intArg(st.Args, 0)
		if err != nil {
			return "", err
		}
		return show(a.Get(i)), nil
	case OpSet:
		i, err := intArg(st.Args, 0)
		if err != nil {
			return "", err
		}
		if len(st.Args) < 2 {
			return "", fmt.Errorf("missing argument 1")
		}
		if err := a.Set(i, Element(st.Args[1])); err != nil {
			return "", err
		}
		return strconv.Itoa(a.Len()), nil
	case OpDelete:
		i, err := intArg(st.Args, 0)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(a.Delete(i)), nil
	case OpLength:
		if len(st.Args) == 0 {
			return strconv.Itoa(a.Len()), nil
		}
		f, ok := Number(st.Args[0])
		if !ok {
			return "", fmt.Errorf("%w: %v", dynarr.ErrInvalidLength, st.Args[0])
		}
		n, err := dynarr.ToLength(f)
		if err != nil {
			return "", err
		}
		if err := a.SetLen(n); err != nil {
			return "", err
		}
		return strconv.Itoa(a.Len()), nil
	}
	return "", fmt.Errorf("unknown op %q", st.Op)
}

func splice(a *dynarr.Array[any], args []any) (string, error) {
	start, err := intArg(args, 0)
	if err != nil {
		return "", err
	}
	if len(args) == 1 {
		return a.SpliceFrom(start).String(), nil
	}
	del, err := intArg(args, 1)
	if err != nil {
		return "", err
	}
	return a.Splice(start, del, elements(args[2:])...).String(), nil
}

func slice(a *dynarr.Array[any], args []any) (string, error) {
	begin := 0
	if len(args) > 0 {
		var err error
		if begin, err = intArg(args, 0); err != nil {
			return "", err
		}
	}
	if len(args) < 2 {
		return a.SliceFrom(begin).String(), nil
	}
	end, err := intArg(args, 1)
	if err != nil {
		return "", err
	}
	return a.Slice(begin, end).String(), nil
}

func comparator(name string) dynarr.Compare[any] {
	switch name {
	case CmpNumeric:
		return CompareNumbers
	case CmpNumericDesc:
		return dynarr.Reversed[any](CompareNumbers)
	}
	return nil
}

func elements(args []any) []any {
	vs := make([]any, len(args))
	for i, v := range args {
		vs[i] = Element(v)
	}
	return vs
}

func show(v any, ok bool) string {
	if !ok {
		return Absent
	}
	return dynarr.Format(v)
}
