//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/go-json-experiment/json"

	"github.com/christianalfoni/rask-ui/internal/wasmapi"
)

func main() {
	api := wasmapi.New(nil)

	// raskTransformModule(moduleJSON, configJSON?) returns a JSON string with
	// either "module" and "components" or "error".
	js.Global().Set("raskTransformModule", js.FuncOf(func(this js.Value, args []js.Value) (result any) {
		// Recover from panics and return error
		defer func() {
			if r := recover(); r != nil {
				result = errorResult(fmt.Sprintf("panic: %v", r))
			}
		}()

		if len(args) < 1 {
			return errorResult("raskTransformModule requires at least 1 argument: module")
		}

		moduleJSON := args[0].String()
		var configJSON string
		if len(args) >= 2 && args[1].Type() == js.TypeString {
			configJSON = args[1].String()
		}

		transformResult, err := api.TransformModule(moduleJSON, configJSON)
		if err != nil {
			return errorResult(err.Error())
		}

		return successResult(transformResult)
	}))

	// Keep the Go runtime alive
	<-make(chan struct{})
}

func errorResult(msg string) string {
	data, _ := json.Marshal(map[string]any{
		"error": msg,
	})
	return string(data)
}

func successResult(result *wasmapi.TransformResult) string {
	data, _ := json.Marshal(result)
	return string(data)
}
