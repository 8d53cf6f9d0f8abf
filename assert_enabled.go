//go:build assert_enabled

package main

// Assert crashes the program if condition is false. Asserts only exist in
// builds made with the assert_enabled tag.
func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
