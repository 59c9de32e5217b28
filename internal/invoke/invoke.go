// Package invoke calls step bodies and helper actions through reflection,
// converting extracted parameters to the declared argument types.
package invoke

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/denizgursoy/cacik-bdd/pkg/async"
)

var (
	contextType  = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	anySliceType = reflect.TypeOf([]any(nil))
)

// Result is what a called function produced.
type Result struct {
	// Value is the first return value that is neither a context nor an error.
	// Deferred results are awaited and replaced with their value.
	Value any

	// Context is a context.Context returned by the function, nil if none.
	Context context.Context
}

// Validate checks that fn can be called by Call.
func Validate(fn any) error {
	if fn == nil {
		return fmt.Errorf("handler must be a function, got nil")
	}
	if reflect.TypeOf(fn).Kind() != reflect.Func {
		return fmt.Errorf("handler must be a function, got %T", fn)
	}
	return nil
}

// Call invokes fn with args. A context.Context parameter receives ctx, a
// single []any parameter receives all args, other parameters consume args
// positionally. Args left over after the last parameter are ignored.
// Panics are returned as errors.
func Call(ctx context.Context, fn any, args []any) (res Result, err error) {
	if err := Validate(fn); err != nil {
		return Result{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	callArgs, err := buildCallArgs(ctx, fnType, args)
	if err != nil {
		return Result{}, err
	}

	return processReturnValues(ctx, fnType, fnValue.Call(callArgs))
}

// buildCallArgs constructs the argument slice for function invocation
func buildCallArgs(ctx context.Context, fnType reflect.Type, args []any) ([]reflect.Value, error) {
	numParams := fnType.NumIn()
	callArgs := make([]reflect.Value, 0, numParams)

	argIndex := 0
	for i := 0; i < numParams; i++ {
		paramType := fnType.In(i)

		if paramType == contextType {
			callArgs = append(callArgs, reflect.ValueOf(ctx))
			continue
		}

		if fnType.IsVariadic() && i == numParams-1 {
			elemType := paramType.Elem()
			for ; argIndex < len(args); argIndex++ {
				converted, err := convertArg(args[argIndex], elemType)
				if err != nil {
					return nil, fmt.Errorf("failed to convert argument %v to %s: %w", args[argIndex], elemType, err)
				}
				callArgs = append(callArgs, converted)
			}
			break
		}

		if paramType == anySliceType {
			all := make([]any, len(args)-argIndex)
			copy(all, args[argIndex:])
			callArgs = append(callArgs, reflect.ValueOf(all))
			argIndex = len(args)
			continue
		}

		if argIndex >= len(args) {
			return nil, fmt.Errorf("not enough arguments: expected %d more, have %d", numParams-i, len(args)-argIndex)
		}

		arg := args[argIndex]
		argIndex++

		converted, err := convertArg(arg, paramType)
		if err != nil {
			return nil, fmt.Errorf("failed to convert argument %v to %s: %w", arg, paramType, err)
		}
		callArgs = append(callArgs, converted)
	}

	return callArgs, nil
}

// processReturnValues extracts value, context and error from return values
func processReturnValues(ctx context.Context, fnType reflect.Type, results []reflect.Value) (Result, error) {
	var (
		res      Result
		retErr   error
		hasValue bool
	)

	for i, result := range results {
		resultType := fnType.Out(i)

		if resultType == contextType {
			if !result.IsNil() {
				res.Context = result.Interface().(context.Context)
			}
			continue
		}

		if resultType == errorType {
			if !result.IsNil() {
				retErr = result.Interface().(error)
			}
			continue
		}

		if hasValue {
			continue
		}
		hasValue = true

		value := result.Interface()
		if deferred, ok := value.(*async.Deferred); ok && deferred != nil {
			v, err := deferred.Await(ctx)
			if err != nil && retErr == nil {
				retErr = err
			}
			value = v
		}
		res.Value = value
	}

	return res, retErr
}

// convertArg converts an extracted parameter to the target type
func convertArg(arg any, targetType reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(targetType), nil
	}

	value := reflect.ValueOf(arg)
	if value.Type().AssignableTo(targetType) {
		return value, nil
	}

	if s, ok := arg.(string); ok {
		return convertString(s, targetType)
	}

	if isNumeric(value.Kind()) && isNumeric(targetType.Kind()) {
		return value.Convert(targetType), nil
	}

	if value.Type().ConvertibleTo(targetType) && value.Kind() == targetType.Kind() {
		return value.Convert(targetType), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", arg, targetType)
}

// convertString converts a raw captured group to the target type
func convertString(arg string, targetType reflect.Type) (reflect.Value, error) {
	switch targetType.Kind() {
	case reflect.String:
		return reflect.ValueOf(arg).Convert(targetType), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(arg, 10, targetType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v).Convert(targetType), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(arg, 10, targetType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v).Convert(targetType), nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(arg, targetType.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v).Convert(targetType), nil

	case reflect.Bool:
		v, err := parseBool(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v).Convert(targetType), nil

	case reflect.Interface:
		if reflect.TypeOf(arg).Implements(targetType) {
			return reflect.ValueOf(arg), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("unsupported parameter type: %s", targetType)
}

// parseBool accepts the words feature files commonly use for booleans
func parseBool(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "yes", "on", "enabled":
		return true, nil
	case "no", "off", "disabled":
		return false, nil
	}
	return strconv.ParseBool(arg)
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
