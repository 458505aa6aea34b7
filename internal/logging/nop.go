package logging

import "github.com/sanodmendis/ShuffleRooster/types"

// Nop drops every message. It is the default logger of Grouper and Session,
// so the library stays silent unless a logger is configured.
//
// Fatal does not exit.
type Nop struct{}

var _ types.Logger = Nop{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
func (Nop) Fatal(string, ...any) {}
