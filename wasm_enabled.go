//go:build js && wasm

package main

import (
	"syscall/js"
)

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	username := js.Global().Get("username")
	if username.IsUndefined() {
		return "browser"
	}
	return username.String()
}

// WriteFile does nothing in the browser, recordings are not kept.
func WriteFile(name string, data []byte) {
}
