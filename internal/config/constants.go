package config

import "time"

// Application identity.
const (
	AppName        = "timetracker"
	ConfigFileName = "config.yaml"
)

// Persistence.
const (
	// DefaultDataFile is resolved against the working directory.
	DefaultDataFile = "timetracker.json"
	DataFileMode    = 0o644
)

// Event loop.
const (
	// DefaultTickInterval bounds how often active labels are refreshed.
	DefaultTickInterval = 500 * time.Millisecond
	MinTickInterval     = 50 * time.Millisecond
)

// Layout constants.
const (
	// HeaderHeight covers the title, summary and tab bar lines.
	HeaderHeight = 5

	// FooterHeight covers the name input and help lines.
	FooterHeight = 5

	// RowHeight is the number of lines one timer row occupies.
	RowHeight = 1

	// MinNameWidth is the narrowest column a timer name is squeezed into.
	MinNameWidth = 8

	// ShareBarWidth is the width of the per-row share bar.
	ShareBarWidth = 12

	// DefaultWidth is used until the first window size message arrives.
	DefaultWidth  = 80
	DefaultHeight = 24
)

// NamePlaceholder is shown in the empty name field.
const NamePlaceholder = "Enter name"
