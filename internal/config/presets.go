package config

import "sort"

var Presets = map[string]*Config{
	"noir": {
		Toggle: ToggleConfig{Period: 180, Variant: "threshold"},
	},
	"classic": {
		Toggle: ToggleConfig{Period: 300, Variant: "modulo"},
	},
	"quick": {
		Toggle: ToggleConfig{Period: 30, Variant: "threshold"},
		FPS:    30,
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Toggle = p.Toggle
	if p.FPS > 0 {
		cfg.FPS = p.FPS
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
