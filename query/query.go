package query

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/expr-lang/expr"
)

// ErrEmptyExpression is returned when the expression is empty.
var ErrEmptyExpression = errors.New("expression must not be empty")

// Function is a helper callable from expressions.
type Function func(args ...any) (any, error)

// EvaluationError captures the expression alongside the originating error.
type EvaluationError struct {
	Expr string
	Err  error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("query: expr=%q: %v", e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithFunction registers fn under name. Registering "get" replaces the built-in.
func WithFunction(name string, fn Function) Option {
	return func(e *Evaluator) {
		if name == "" || fn == nil {
			return
		}

		e.functions[name] = fn
	}
}

// Evaluator runs expressions against configuration documents.
type Evaluator struct {
	functions map[string]Function
}

// NewEvaluator constructs an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{functions: map[string]Function{}}

	for _, apply := range opts {
		if apply != nil {
			apply(e)
		}
	}

	return e
}

// Evaluate runs expression against cfg with a default Evaluator.
func Evaluate(cfg *config.Config, expression string) (any, error) {
	return NewEvaluator().Evaluate(cfg, expression)
}

// Evaluate compiles expression against the current contents of cfg and runs it.
func (e *Evaluator) Evaluate(cfg *config.Config, expression string) (any, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}

	env := e.environment(cfg)

	program, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, &EvaluationError{Expr: expression, Err: err}
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, &EvaluationError{Expr: expression, Err: err}
	}

	return result, nil
}

func (e *Evaluator) environment(cfg *config.Config) map[string]any {
	env := cfg.Data()

	env["get"] = func(path string, def ...any) any {
		var fallback any
		if len(def) > 0 {
			fallback = def[0]
		}

		return cfg.Get(path, fallback)
	}

	for name, fn := range e.functions {
		env[name] = fn
	}

	return env
}
