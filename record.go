// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Record is a tagged, ordered tuple of values — the runtime's
// representation of a compiler-emitted sum-type instance. Kind names
// the sum type the record belongs to (e.g. "Option"); Tag names the
// particular constructor within it (e.g. "Some").
type Record struct {
	Kind   string
	Tag    string
	Values []Value
}

// Constructor builds a factory for Record values tagged (kind, tag).
// The compiler emits one Constructor call per sum-type arm and applies
// the returned factory to each arm's argument values.
func Constructor(kind, tag string) func(values ...Value) Record {
	return func(values ...Value) Record {
		return Record{Kind: kind, Tag: tag, Values: values}
	}
}

// HoleError is what Hole panics with. It implements error so a
// recovering caller (or Run) can report it like any other failure.
type HoleError struct{}

func (HoleError) Error() string { return "kont: implementation missing" }

// Hole terminates the program abruptly, standing in for a compiler-
// inserted placeholder in source not yet implemented. It never returns;
// the type parameter only lets Hole appear in any expression position.
func Hole[T any]() T {
	panic(HoleError{})
}
