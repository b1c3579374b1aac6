//go:build windows

package userenv

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const envKeyPath = `Environment`

// Available reports whether the user environment block can be opened for
// writing. It is checked up front so commands fail before any prompting.
func Available() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening HKCU\\Environment: %w", err)
	}
	return k.Close()
}

// Get reads a value from the user environment block. A missing value is
// returned as an empty string, not an error.
func Get(name string) (string, ValueType, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", String, fmt.Errorf("opening HKCU\\Environment: %w", err)
	}
	defer k.Close()

	val, typ, err := k.GetStringValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", String, nil
		}
		return "", String, fmt.Errorf("reading %s: %w", name, err)
	}
	if typ == registry.EXPAND_SZ {
		return val, ExpandString, nil
	}
	return val, String, nil
}

// Set writes a value to the user environment block with the given type and
// notifies running applications of the change.
func Set(name, value string, typ ValueType) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening HKCU\\Environment: %w", err)
	}
	defer k.Close()

	if typ == ExpandString {
		err = k.SetExpandStringValue(name, value)
	} else {
		err = k.SetStringValue(name, value)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	broadcastChange()
	return nil
}

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	hwndBroadcast   = 0xFFFF
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

// broadcastChange tells top-level windows the environment block changed.
// Failures are ignored; the registry write already succeeded.
func broadcastChange() {
	env, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}
	procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(env)),
		smtoAbortIfHung,
		5000,
		0,
	)
}
