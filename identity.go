package pandora

// Keys of the persisted key-value slots.
const (
	UserIDKey = "user_id" // Signed-in user identity
	ThemeKey  = "theme"   // "dark" or "light"
)

// Theme values stored under ThemeKey.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// KeyValueStore is a persisted, process-wide string slot store.
// A missing key is reported with ok == false and a nil error.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// LookupUserID returns the stored user id, or "" when none is stored.
func LookupUserID(store KeyValueStore) (string, error) {
	id, ok, err := store.Get(UserIDKey)
	if err != nil || !ok {
		return "", err
	}
	return id, nil
}

// LookupTheme returns the stored theme flag, or fallback when none is
// stored or the stored value is not recognized.
func LookupTheme(store KeyValueStore, fallback bool) (bool, error) {
	v, ok, err := store.Get(ThemeKey)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	switch v {
	case ThemeDark:
		return true, nil
	case ThemeLight:
		return false, nil
	default:
		return fallback, nil
	}
}

// StoreTheme persists the theme flag.
func StoreTheme(store KeyValueStore, isDark bool) error {
	if isDark {
		return store.Set(ThemeKey, ThemeDark)
	}
	return store.Set(ThemeKey, ThemeLight)
}
