// Package hooks provides default Hooks implementations.
package hooks

import (
	"context"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, *types.Partition) error          = (*NopHooks)(nil).OnPartitioned
	_ func(context.Context, types.State, types.State) error = (*NopHooks)(nil).OnStateChanged
	_ func(context.Context, error) error                     = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPartitioned:  h.OnPartitioned,
		OnStateChanged: h.OnStateChanged,
		OnError:        h.OnError,
	}
}

// Fill returns hooks with every nil callback replaced by a no-op.
func Fill(h types.Hooks) types.Hooks {
	nop := NewNop()
	if h.OnPartitioned == nil {
		h.OnPartitioned = nop.OnPartitioned
	}
	if h.OnStateChanged == nil {
		h.OnStateChanged = nop.OnStateChanged
	}
	if h.OnError == nil {
		h.OnError = nop.OnError
	}

	return h
}

// OnPartitioned is a no-op implementation.
func (h *NopHooks) OnPartitioned(_ context.Context, _ *types.Partition) error {
	return nil
}

// OnStateChanged is a no-op implementation.
func (h *NopHooks) OnStateChanged(_ context.Context, _, _ types.State) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
