package enums

// ThemeMode is the persisted display-mode value.
type ThemeMode string

const (
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeLight ThemeMode = "light"
)

// String implements fmt.Stringer.
func (m ThemeMode) String() string {
	return string(m)
}
