package interp

import (
	"fmt"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/native"
	"github.com/rhea-language/rhea-sub001/internal/token"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// resolveNativeBinding implements the native-binding half of `val
// name@"libpath" = fnName;` (spec.md §4.2/§4.7): load libPath (cached
// process-wide in Runtime), resolve fnName to its underscore-joined
// symbol, and wrap it as a Native value bound to name.
func (ip *Interpreter) resolveNativeBinding(addr token.Position, binding ast.VariableBinding) (*value.Native, error) {
	loader := native.New(ip.RT)
	plug, err := loader.Resolve(binding.LibPath)
	if err != nil {
		return nil, err
	}
	sym, err := native.Symbol(plug, binding.NativeSymbol)
	if err != nil {
		return nil, err
	}
	fn, ok := sym.(value.NativeFunc)
	if !ok {
		return nil, fmt.Errorf("native symbol %q does not match the expected ABI signature", binding.NativeSymbol)
	}
	return value.NewNative(binding.NativeSymbol, fn), nil
}
