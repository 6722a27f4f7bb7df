package storage

import "fyne.io/fyne/v2"

// Preferences adapts fyne application preferences to KV.
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences wraps prefs, usually fyne.App.Preferences().
func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

// Get returns the value stored under key. Empty strings count as absent.
func (preferences *Preferences) Get(key string) (string, bool) {
	value := preferences.prefs.String(key)
	return value, value != ""
}

// Set stores value under key.
func (preferences *Preferences) Set(key, value string) error {
	preferences.prefs.SetString(key, value)
	return nil
}
