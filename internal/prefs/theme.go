package prefs

import "github.com/pkg/errors"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrInvalidTheme is returned by SetTheme for anything but dark or light.
var ErrInvalidTheme = errors.New("theme must be dark or light")

// Theme resolves the active theme. A stored "dark" wins, any other stored value
// means light, and systemDark decides when nothing (or an empty string) is stored.
func Theme(storage Storage, systemDark bool) (string, error) {
	if storage != nil {
		stored, ok, err := storage.GetItem(KeyTheme)
		if err != nil {
			return "", errors.Wrap(err, "read theme")
		}
		if ok && stored != "" {
			if stored == ThemeDark {
				return ThemeDark, nil
			}
			return ThemeLight, nil
		}
	}
	if systemDark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

func SetTheme(storage Storage, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return errors.Wrapf(ErrInvalidTheme, "got %q", theme)
	}
	return errors.Wrap(storage.SetItem(KeyTheme, theme), "persist theme")
}
