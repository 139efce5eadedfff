package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// defaultInstructionLimit caps Lua opcodes per evaluation. AC formulas are a
// handful of arithmetic terms; anything that hits this limit is hostile input.
const defaultInstructionLimit = 10_000

var refPattern = regexp.MustCompile(`@[A-Za-z_][A-Za-z0-9_.]*`)

// LuaEvaluator evaluates formulas in a sandboxed GopherLua state with only the
// math library loaded. A fresh state is built per call; evaluations are
// independent and safe for concurrent use.
type LuaEvaluator struct {
	instLimit int
}

// NewLuaEvaluator creates an evaluator with the default instruction limit
func NewLuaEvaluator() *LuaEvaluator {
	return &LuaEvaluator{instLimit: defaultInstructionLimit}
}

// Evaluate substitutes @-references from data and evaluates the result as a
// Lua expression. Unresolvable references, parse failures, and non-numeric
// results are all reported as errors; callers decide how to recover.
func (e *LuaEvaluator) Evaluate(formula string, data map[string]float64) (float64, error) {
	if strings.TrimSpace(formula) == "" {
		return 0, fmt.Errorf("empty formula")
	}

	var missing []string
	replaced := refPattern.ReplaceAllStringFunc(formula, func(ref string) string {
		key := strings.TrimPrefix(ref, "@")
		v, ok := data[key]
		if !ok {
			missing = append(missing, key)
			return ref
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	})
	if len(missing) > 0 {
		return 0, fmt.Errorf("unresolved formula references: %s", strings.Join(missing, ", "))
	}

	L := e.newState()
	defer L.Close()

	if err := L.DoString("return " + replaced); err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", formula, err)
	}

	ret := L.Get(-1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("formula %q returned %s, want number", formula, ret.Type())
	}
	return float64(n), nil
}

// newState builds a Lua state with only safe libraries loaded and an
// instruction-count limit enforced through the VM's context hook.
func (e *LuaEvaluator) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenMath(L)

	// Strip globals that could reach outside the sandbox.
	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require", "print"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, _ := newCountingContext(e.instLimit) //nolint:govet // cancel fires when the limit is reached
	L.SetContext(ctx)

	return L
}
