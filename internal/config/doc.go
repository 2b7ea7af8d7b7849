// Package config handles loading and parsing the notilog configuration file.
//
// # Overview
//
// The config file fixes everything that is decided once at startup: the
// notification label and icon, the ring capacity, how many lines the
// notification summary carries, the initial notification and toast flags,
// where display preferences live, and which sink and notifier to use.
// Settings that change while running (level, filter, theme) belong to the
// prefs package instead.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/notilog/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - Label: "Log"
//   - Icon: "dialog-information"
//   - Capacity: 1000 entries
//   - Summary lines: 10
//   - Notifications: enabled
//   - Toasts: disabled
//   - Prefs path: ~/.config/notilog/prefs.toml
//   - Sink: stderr
//   - Notifier: desktop
//
// # TOML Format
//
//	label = "Example"
//	icon = "utilities-terminal"
//	capacity = 1000
//	summary_lines = 10
//	notifications = true
//	toasts = false
//	prefs_path = "~/.config/notilog/prefs.toml"
//	sink = "syslog"       # stderr, syslog or none
//	notifier = "desktop"  # desktop, terminal or none
//
// Every field is optional. Tilde expansion is performed for prefs_path.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown sink or notifier names
//
// Missing config files are NOT an error. The tool works out of the box.
package config
