package config

var Presets = map[string]map[string]*Config{
	"spiral": {
		"small": {
			Scene: "spiral", Width: 110, Height: 110, FPS: 30, Speed: 1, Theme: "mono",
		},
		"fast": {
			Scene: "spiral", Width: 110, Height: 110, FPS: 60, Speed: 4, Theme: "mono",
		},
	},
	"rainbow": {
		"wide": {
			Scene: "rainbow", Width: 220, Height: 80, FPS: 30, Speed: 8, Theme: "neon",
		},
		"slow": {
			Scene: "rainbow", Width: 220, Height: 80, FPS: 15, Speed: 2, Theme: "neon",
		},
	},
	"bands": {
		"wide": {
			Scene: "bands", Width: 220, Height: 80, FPS: 30, Speed: 8, Theme: "mono",
		},
	},
	"star": {
		"large": {
			Scene: "star", Width: 140, Height: 140, FPS: 30, Speed: 1, Theme: "amber",
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
