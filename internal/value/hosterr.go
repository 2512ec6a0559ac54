package value

import "fmt"

// HostErrorType classifies an unrecoverable embedder bug (§7.7): these
// never touch a fiber's error slot, since they indicate the host program
// itself is misusing the registration API, not that a script did
// something wrong.
type HostErrorType string

const (
	DuplicateModule  HostErrorType = "DuplicateModule"
	DuplicateBinding HostErrorType = "DuplicateBinding"
)

// HostError is panicked by the Native Registry when the host violates its
// contract (registering a module or function/global name twice). It is
// modeled on the reference tree's located, typed error value rather than a
// bare string, so an embedding CLI can recover it and print something
// structured.
type HostError struct {
	Type    HostErrorType
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// PanicHost panics with a HostError built from typ and a message formatted
// with fmt.Sprintf. There is deliberately no recover-and-continue path in
// this package: the caller (the registry) is expected to let this unwind
// to the embedding host.
func PanicHost(typ HostErrorType, format string, args ...interface{}) {
	panic(&HostError{Type: typ, Message: fmt.Sprintf(format, args...)})
}
