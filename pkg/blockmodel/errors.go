package blockmodel

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrModelNotFound is matched by ModelNotFoundError.
	ErrModelNotFound = errors.New("model not found")
	// ErrCyclicReference is matched by CyclicReferenceError.
	ErrCyclicReference = errors.New("cyclic reference")
	// ErrMalformedModel is matched by MalformedModelError.
	ErrMalformedModel = errors.New("malformed model")
)

// ModelNotFoundError reports a model (or one of its ancestors) with no file on disk.
type ModelNotFoundError struct {
	Location ResourceLocation
	Path     string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model file %s does not exist at %s", e.Location, e.Path)
}

func (e *ModelNotFoundError) Is(target error) bool { return target == ErrModelNotFound }

// CyclicReferenceError reports a parent chain or texture-variable chain that loops.
// Chain lists the visited entries in order, ending with the repeated one.
type CyclicReferenceError struct {
	Kind  string
	Chain []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic %s reference: %s", e.Kind, strings.Join(e.Chain, " -> "))
}

func (e *CyclicReferenceError) Is(target error) bool { return target == ErrCyclicReference }

// MalformedModelError wraps a decode failure of a model document.
type MalformedModelError struct {
	Location ResourceLocation
	Err      error
}

func (e *MalformedModelError) Error() string {
	return fmt.Sprintf("could not decode model %s: %v", e.Location, e.Err)
}

func (e *MalformedModelError) Unwrap() error { return e.Err }

func (e *MalformedModelError) Is(target error) bool { return target == ErrMalformedModel }
