package nodeeditor

import "errors"

// Contract violations. These indicate host misuse, not environmental failure,
// and are raised as panics wrapping one of these values.
var (
	ErrDuplicateNode   = errors.New("nodeeditor: node id already exists")
	ErrUnknownNode     = errors.New("nodeeditor: node is not owned by this editor")
	ErrNodeAlreadyOpen = errors.New("nodeeditor: BeginNode called while another node is open")
	ErrNoNodeOpen      = errors.New("nodeeditor: no node is open")
	ErrNoEditor        = errors.New("nodeeditor: no current editor")
)

// ErrMalformedSettings is returned by SettingsStore.Load when the settings
// document cannot be used. The editor tolerates it.
var ErrMalformedSettings = errors.New("nodeeditor: malformed settings")
