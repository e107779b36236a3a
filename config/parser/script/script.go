package script

import (
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

// DefaultTimeout bounds a single script evaluation.
const DefaultTimeout = time.Second

// ErrNotObject is returned when the script does not produce an object.
var ErrNotObject = errors.New("script did not produce an object")

// ErrTimeout is returned when evaluation is interrupted after the configured timeout.
var ErrTimeout = errors.New("script evaluation timed out")

// Option configures a Parser.
type Option func(*Parser)

// WithTimeout overrides DefaultTimeout. Non-positive values disable the limit.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Parser) {
		p.timeout = timeout
	}
}

// Parser implements config.Parser for JavaScript data scripts.
type Parser struct {
	timeout time.Duration
}

// NewParser creates a new script parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{timeout: DefaultTimeout}

	for _, apply := range opts {
		if apply != nil {
			apply(parser)
		}
	}

	return parser
}

// Parse evaluates data as a script and returns the object it produces.
func (p *Parser) Parse(data []byte, name string) (map[string]any, error) {
	program, err := goja.Compile(name, string(data), true)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", name, err)
	}

	vm := goja.New()

	module := vm.NewObject()

	err = vm.Set("module", module)
	if err != nil {
		return nil, fmt.Errorf("preparing %q: %w", name, err)
	}

	if p.timeout > 0 {
		timer := time.AfterFunc(p.timeout, func() {
			vm.Interrupt(ErrTimeout)
		})
		defer timer.Stop()
	}

	value, err := vm.RunProgram(program)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", name, unwrapInterrupt(err))
	}

	if exports := module.Get("exports"); isDefined(exports) {
		value = exports
	}

	if producer, ok := goja.AssertFunction(value); ok {
		value, err = producer(goja.Undefined())
		if err != nil {
			return nil, fmt.Errorf("calling producer in %q: %w", name, unwrapInterrupt(err))
		}
	}

	return exportObject(value, name)
}

func exportObject(value goja.Value, name string) (map[string]any, error) {
	if !isDefined(value) {
		return nil, fmt.Errorf("evaluating %q: %w (got undefined)", name, ErrNotObject)
	}

	exported, ok := value.Export().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("evaluating %q: %w (got %s)", name, ErrNotObject, describe(value))
	}

	return exported, nil
}

func describe(value goja.Value) string {
	switch exported := value.Export().(type) {
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", exported)
	}
}

func isDefined(value goja.Value) bool {
	return value != nil && !goja.IsUndefined(value) && !goja.IsNull(value)
}

// unwrapInterrupt surfaces the value passed to Runtime.Interrupt so callers can match ErrTimeout.
func unwrapInterrupt(err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if cause, ok := interrupted.Value().(error); ok {
			return cause
		}
	}

	return err
}
