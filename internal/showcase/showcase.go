// Package showcase holds the specimen operations: a total addition
// function and the writers that produce the program's observable output.
package showcase

import (
	"fmt"
	"io"
)

// Add returns the sum of two integers. Total function: no error
// conditions, no side effects. Overflow follows Go's two's-complement
// wraparound; callers must not rely on it.
func Add(a, b int) int {
	return a + b
}

// Demonstrate runs the showcase computation and writes exactly one line,
// "Result: 3\n", to w. The write is the only side effect.
func Demonstrate(w io.Writer) error {
	result := Add(1, 2)
	if _, err := fmt.Fprintf(w, "Result: %d\n", result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// privateNote writes a fixed line. No production code path calls it; it
// exists to demonstrate package-private visibility and is exercised by
// tests only.
func privateNote(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Private"); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}
