package config

// DefaultTitle is the console window title when the config does not set one.
const DefaultTitle = "App Switcher"

// builtinBindings is the compiled-in binding table used when no config file
// exists. Edit ~/.config/appswitch/config.yaml to replace it.
var builtinBindings = []Binding{
	{Key: "C", App: "Chromium"},
	{Key: "F", App: "Firefox"},
	{Key: "G", App: "GIMP"},
	{Key: "M", App: "Thunderbird"},
	{Key: "S", App: "Slack"},
	{Key: "V", App: "Visual Studio Code"},
}

// DefaultConfig returns the effective config with builtin defaults.
func DefaultConfig() *Config {
	b := make([]Binding, len(builtinBindings))
	copy(b, builtinBindings)
	return &Config{
		Title:    DefaultTitle,
		Bindings: b,
	}
}
