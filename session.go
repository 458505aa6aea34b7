package shufflerooster

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanodmendis/ShuffleRooster/internal/hooks"
)

// TracerName is the instrumentation name of the default Session tracer.
const TracerName = "github.com/sanodmendis/ShuffleRooster"

// Session holds the loaded roster and the most recent partition for an
// interactive front end.
//
// Lifecycle:
//   - Load a roster from a RecordSource (Empty → Loaded)
//   - CreateGroups as often as needed (Loaded → Grouped, Grouped → Grouped)
//   - Save the current partition to a RecordSink
//   - Clear to start over (→ Empty)
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Hooks run synchronously after the session lock is released, so a hook
//     may call back into the session
type Session struct {
	grouper *Grouper
	hooks   Hooks
	metrics MetricsCollector
	logger  Logger
	tracer  trace.Tracer

	mu        sync.RWMutex
	state     State
	records   RecordSet
	partition *Partition
	status    string
}

// NewSession creates an empty Session.
//
// Parameters:
//   - opts: Optional configuration; grouping options are passed to the
//     Session's Grouper, and WithHooks/WithTracer apply to the Session itself
//
// Returns:
//   - *Session: Session in StateEmpty
//
// Example:
//
//	s := shufflerooster.NewSession(shufflerooster.WithSeed(7))
//	src, _ := source.Open("students.csv")
//	if err := s.Load(ctx, src); err != nil { /* handle */ }
//	p, err := s.CreateGroups(ctx, 4)
func NewSession(opts ...Option) *Session {
	o := buildOptions(opts)
	g := newGrouper(o)

	var h Hooks
	if o.hooks != nil {
		h = *o.hooks
	}

	tracer := o.tracer
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	return &Session{
		grouper: g,
		hooks:   hooks.Fill(h),
		metrics: g.metrics,
		logger:  g.logger,
		tracer:  tracer,
		state:   StateEmpty,
	}
}

// Load reads records from src and makes them the current roster.
//
// Any previous partition is dropped. On failure the session is unchanged.
//
// Parameters:
//   - ctx: Context for cancellation and tracing
//   - src: Record source
//
// Returns:
//   - error: Source error (wrapping ErrSourceUnreadable) or ErrNoRecords
func (s *Session) Load(ctx context.Context, src RecordSource) error {
	format := formatOf(src)
	ctx, span := s.tracer.Start(ctx, "session.Load", trace.WithAttributes(attribute.String("format", format)))
	defer span.End()

	rs, err := src.ReadRecords(ctx)
	if err == nil && rs.Len() == 0 {
		err = ErrNoRecords
	}
	if err != nil {
		s.metrics.RecordLoad(format, 0, false)
		return s.fail(ctx, span, fmt.Errorf("load records: %w", err))
	}
	span.SetAttributes(attribute.Int("records", rs.Len()))

	s.mu.Lock()
	from := s.state
	s.records = rs
	s.partition = nil
	s.status = fmt.Sprintf("Loaded %d students", rs.Len())
	status := s.status
	changed := s.transitionLocked(StateLoaded)
	s.mu.Unlock()

	s.metrics.RecordLoad(format, rs.Len(), true)
	s.logger.Info(status, "format", format, "columns", len(rs.Header))
	if changed {
		s.stateChanged(ctx, from, StateLoaded)
	}

	return nil
}

// CreateGroups partitions the loaded roster into groups of groupSize.
//
// An invalid size leaves the previous partition in place.
//
// Parameters:
//   - ctx: Context for cancellation and tracing
//   - groupSize: Target members per group
//
// Returns:
//   - *Partition: New current partition (read-only)
//   - error: ErrNoRecords before Load, *InvalidGroupSizeError for an out-of-range size
func (s *Session) CreateGroups(ctx context.Context, groupSize int) (*Partition, error) {
	ctx, span := s.tracer.Start(ctx, "session.CreateGroups", trace.WithAttributes(attribute.Int("group_size", groupSize)))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, s.fail(ctx, span, err)
	}

	s.mu.Lock()
	if s.state == StateEmpty {
		s.mu.Unlock()
		return nil, s.fail(ctx, span, ErrNoRecords)
	}

	p, err := s.grouper.Group(s.records, groupSize)
	if err != nil {
		s.mu.Unlock()
		return nil, s.fail(ctx, span, err)
	}

	from := s.state
	s.partition = p
	s.status = fmt.Sprintf("Created %d groups", p.GroupCount())
	status := s.status
	changed := s.transitionLocked(StateGrouped)
	s.mu.Unlock()

	span.SetAttributes(
		attribute.String("partition_id", p.ID),
		attribute.Int("records", p.Len()),
		attribute.Int("groups", p.GroupCount()),
		attribute.Bool("redistributed", p.Redistributed),
	)
	s.logger.Info(status, "partition_id", p.ID, "group_size", groupSize, "redistributed", p.Redistributed)

	if changed {
		s.stateChanged(ctx, from, StateGrouped)
	}
	if err := s.hooks.OnPartitioned(ctx, p); err != nil {
		s.logger.Error("partitioned hook error", "partition_id", p.ID, "error", err)
	}

	return p, nil
}

// Save writes the current partition to dst.
//
// Parameters:
//   - ctx: Context for cancellation and tracing
//   - dst: Record sink
//
// Returns:
//   - error: ErrNoPartition before CreateGroups, or the sink's error
func (s *Session) Save(ctx context.Context, dst RecordSink) error {
	format := formatOf(dst)
	ctx, span := s.tracer.Start(ctx, "session.Save", trace.WithAttributes(attribute.String("format", format)))
	defer span.End()

	s.mu.RLock()
	p := s.partition
	s.mu.RUnlock()

	if p == nil {
		return s.fail(ctx, span, ErrNoPartition)
	}

	if err := dst.WritePartition(ctx, p); err != nil {
		s.metrics.RecordExport(format, false)
		return s.fail(ctx, span, fmt.Errorf("save groups: %w", err))
	}

	s.metrics.RecordExport(format, true)
	s.logger.Info("groups saved", "partition_id", p.ID, "format", format)

	return nil
}

// Clear drops the roster and partition.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	from := s.state
	s.records = RecordSet{}
	s.partition = nil
	s.status = ""
	changed := s.transitionLocked(StateEmpty)
	s.mu.Unlock()

	if changed {
		s.stateChanged(ctx, from, StateEmpty)
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Records returns a copy of the loaded roster.
func (s *Session) Records() RecordSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records.Clone()
}

// Partition returns the current partition, or nil before CreateGroups.
//
// The partition is shared with the session and must not be modified.
func (s *Session) Partition() *Partition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.partition
}

// Status returns the summary of the last successful Load or CreateGroups,
// e.g. "Loaded 28 students" or "Created 7 groups".
func (s *Session) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

// transitionLocked moves to the target state. It reports whether the state
// changed. Caller must hold s.mu.
func (s *Session) transitionLocked(to State) bool {
	from := s.state
	if from == to {
		return false
	}
	if !isValidTransition(from, to) {
		s.logger.Error("invalid state transition attempted", "from", from.String(), "to", to.String())
		return false
	}
	s.state = to

	return true
}

func (s *Session) stateChanged(ctx context.Context, from, to State) {
	s.logger.Debug("state transition", "from", from.String(), "to", to.String())

	if err := s.hooks.OnStateChanged(ctx, from, to); err != nil {
		s.logger.Error("state change hook error", "from", from.String(), "to", to.String(), "error", err)
	}
}

// fail records err on the span, runs the error hook and returns err.
func (s *Session) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if hookErr := s.hooks.OnError(ctx, err); hookErr != nil {
		s.logger.Error("error hook error", "error", hookErr)
	}

	return err
}

// isValidTransition validates that a state transition is allowed.
func isValidTransition(from, to State) bool {
	validTransitions := map[State][]State{
		StateEmpty:   {StateLoaded},
		StateLoaded:  {StateGrouped, StateEmpty},
		StateGrouped: {StateLoaded, StateEmpty},
	}

	allowedStates, exists := validTransitions[from]
	if !exists {
		return false
	}

	for _, allowed := range allowedStates {
		if allowed == to {
			return true
		}
	}

	return false
}

// formatOf returns the format name of a source or sink, or "custom".
func formatOf(v any) string {
	if f, ok := v.(interface{ Format() string }); ok {
		return f.Format()
	}

	return "custom"
}
