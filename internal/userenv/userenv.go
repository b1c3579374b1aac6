// Package userenv reads and writes the user's persistent environment
// variables. On Windows these live under HKCU\Environment in the registry;
// writes broadcast WM_SETTINGCHANGE so running shells notice the change.
package userenv

import "errors"

// ErrUnsupported is returned on platforms without a user environment block.
var ErrUnsupported = errors.New("user environment variables are only supported on Windows")

// ValueType mirrors the registry string value types so a value can be
// written back as the type it was read with.
type ValueType uint32

const (
	// String is a plain string value (REG_SZ).
	String ValueType = 1
	// ExpandString is a string with unexpanded %VAR% references (REG_EXPAND_SZ).
	ExpandString ValueType = 2
)
