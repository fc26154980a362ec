// Package grader defines the contract for judging a submitted solution.
//
// CodeAce does not execute user code itself. A real deployment plugs in
// a Grader backed by a sandboxed execution service; the implementations
// here exist for tests and demos only.
package grader

import (
	"context"
	"math/rand/v2"

	"github.com/codeace-app/codeace/internal/catalog"
)

// Verdict is the outcome of grading a submission.
type Verdict string

const (
	Correct   Verdict = "correct"
	Incorrect Verdict = "incorrect"
)

// Grader judges a solution for a problem.
type Grader interface {
	Grade(ctx context.Context, problem catalog.Problem, code string) (Verdict, error)
}

// Func adapts a plain function to the Grader interface.
type Func func(ctx context.Context, problem catalog.Problem, code string) (Verdict, error)

func (f Func) Grade(ctx context.Context, problem catalog.Problem, code string) (Verdict, error) {
	return f(ctx, problem, code)
}

// Fixed returns a Grader that always produces the given verdict.
func Fixed(v Verdict) Grader {
	return Func(func(context.Context, catalog.Problem, string) (Verdict, error) {
		return v, nil
	})
}

// Demo is a stand-in grader that passes roughly 70% of submissions at
// random. It exists so the system is exercisable end to end before a
// real execution backend is wired in; nothing about it reflects actual
// grading semantics.
type Demo struct{}

func (Demo) Grade(_ context.Context, _ catalog.Problem, _ string) (Verdict, error) {
	if rand.Float64() > 0.3 {
		return Correct, nil
	}
	return Incorrect, nil
}
