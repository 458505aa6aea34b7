package types

import "context"

// Hooks defines callbacks for Session lifecycle events.
//
// All hooks are optional and run synchronously on the calling goroutine,
// after the session state has been updated.
//
// Hook execution behavior:
//   - Hook errors are logged but don't fail session operations
//   - Hooks run after the session lock is released, so a hook may call
//     back into the Session (State, Partition, even CreateGroups)
//
// Example:
//
//	hooks := &shufflerooster.Hooks{
//	    OnPartitioned: func(ctx context.Context, p *shufflerooster.Partition) error {
//	        fmt.Printf("created %d groups\n", p.GroupCount())
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPartitioned is called after a new partition replaced the previous one.
	OnPartitioned func(ctx context.Context, p *Partition) error

	// OnStateChanged is called when the session state transitions.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnError is called when a session operation fails.
	OnError func(ctx context.Context, err error) error
}
