// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kont is a runtime for multi-prompt delimited control with
// first-class, resumable continuations and lexically scoped mutable
// regions. It is meant as a compilation target: a compiler for an
// effect-typed language lowers source-level effect handlers into calls
// against the primitives below, rather than user code calling them
// directly in day-to-day use.
//
// # Core primitives
//
//   - [Cell]: a single mutable location with Read, Write, and Snapshot.
//   - [Arena]: an ordered collection of cells forming one region.
//   - [RegionStack]: a stack of active arenas with a current pointer.
//   - [Suspension], [Segment], [Continuation]: the representation of an
//     in-flight and a captured continuation.
//   - [Machine]: process-wide executor state — a prompt counter and a
//     region stack — passed explicitly rather than held in package
//     globals. [FreshPrompt], [Fresh], [Suspend], [Handle],
//     [FreshRegion], [LeaveRegion], and [Global] are thin wrappers
//     around a package-level default Machine for callers that do not
//     need isolation.
//
// # Suspend, Push, Handle
//
// [Machine.Suspend] begins an unwind targeting a prompt, panicking with
// a *Suspension that [Push] extends with one pure frame per enclosing
// direct-style expression as the panic passes through. [Machine.Handle]
// catches a suspension targeting its own prompt, captures the
// continuation between the suspend site and itself as a chain of
// [Segment] values, and invokes the suspension's body with a resume
// function closed over that chain. Resuming — [Machine.rewind] — is
// non-destructive: every invocation restores its own copy of each
// captured region, so the same continuation may be invoked any number
// of times.
//
// # Standard effects
//
// State, Reader, and Writer ([Get]/[Put]/[Modify], [Env.Ask],
// [Log.Tell]/[Listen]/[Censor]) never need to transfer control, so they
// are built directly on [Cell] rather than on Suspend/Handle. Error
// ([Throw]/[Catch]/[Either]) genuinely needs a non-local exit and is
// built on Suspend/Handle: RunError installs a fresh prompt, and a
// Throw against that prompt aborts straight to it.
//
// # Trampoline
//
// [Step] and [Trampoline] bound native stack growth across tail calls a
// compiler cannot otherwise shrink, independent of the suspension
// machinery above.
//
// # Records and holes
//
// [Constructor] builds tagged-record factories for compiler-emitted sum
// types; [Hole] terminates the program with a [HoleError] standing in
// for a not-yet-implemented compiler-inserted placeholder.
package kont
