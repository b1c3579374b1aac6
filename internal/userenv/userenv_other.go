//go:build !windows

package userenv

// Available is unsupported off Windows.
func Available() error {
	return ErrUnsupported
}

// Get is unsupported off Windows.
func Get(name string) (string, ValueType, error) {
	return "", String, ErrUnsupported
}

// Set is unsupported off Windows.
func Set(name, value string, typ ValueType) error {
	return ErrUnsupported
}
