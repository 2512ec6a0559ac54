// Package errors formats a fiber's single error slot (embervm/internal/value)
// into a diagnostic a host program can print. There is no compiler in this
// tree, so a Diagnostic carries no source line/column: only which module and
// native function raised it, and the chain of native calls that led there.
package errors

import (
	"fmt"
	"strings"
)

// DiagnosticType classifies the two ways a fiber error or a registration
// panic reaches the host: a script-level failure the fiber's error slot
// carries (ValueError), or an unrecoverable embedder-contract violation
// (HostFault, mirroring value.HostError's Type field).
type DiagnosticType string

const (
	ValueError DiagnosticType = "ValueError"
	HostFault  DiagnosticType = "HostFault"
)

// Frame identifies one native call in the chain that produced a Diagnostic:
// the module it belongs to ("" for the anonymous built-in table) and the
// function name.
type Frame struct {
	Module   string
	Function string
}

// Diagnostic is the host-facing wrapper around a fiber error or a recovered
// HostError: a type, the message text, and the call chain that was active
// when it surfaced.
type Diagnostic struct {
	Type      DiagnosticType
	Message   string
	CallStack []Frame
}

// Error implements the error interface, rendering a call stack the way a
// host CLI would print one: frames in push order (outermost first, most
// recent call last), one "at" line per frame.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n", d.Type, d.Message))
	for _, f := range d.CallStack {
		if f.Module == "" {
			sb.WriteString(fmt.Sprintf("  at %s\n", f.Function))
			continue
		}
		sb.WriteString(fmt.Sprintf("  at %s.%s\n", f.Module, f.Function))
	}
	return sb.String()
}

// NewValueDiagnostic wraps a fiber error message as a ValueError Diagnostic.
func NewValueDiagnostic(message string) *Diagnostic {
	return &Diagnostic{Type: ValueError, Message: message}
}

// NewHostDiagnostic wraps a recovered value.HostError's message as a
// HostFault Diagnostic.
func NewHostDiagnostic(message string) *Diagnostic {
	return &Diagnostic{Type: HostFault, Message: message}
}

// WithStack replaces the call stack.
func (d *Diagnostic) WithStack(stack []Frame) *Diagnostic {
	d.CallStack = stack
	return d
}

// PushFrame appends one frame, innermost call last, matching the order a
// native call chain is built up during dispatch.
func (d *Diagnostic) PushFrame(module, function string) *Diagnostic {
	d.CallStack = append(d.CallStack, Frame{Module: module, Function: function})
	return d
}
