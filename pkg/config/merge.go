package config

import "strings"

// Merge combines an ordered list of layers, lowest precedence first, into a
// single EffectiveConfig. Per field:
//
//   - language_map and filename_map merge with per-key overwrite; filename
//     keys are lowercased before comparison.
//   - text_extensions is the union across all layers.
//   - ignore_patterns concatenate in layer order, duplicates preserved.
//   - default_language takes the last non-absent value.
//
// A layer can only add or override; an absent field never clears a value
// merged from an earlier layer.
func Merge(layers []RawConfig) EffectiveConfig {
	eff := EffectiveConfig{
		LanguageMap:    make(map[string]string),
		FilenameMap:    make(map[string]string),
		TextExtensions: make(map[string]bool),
	}

	for _, layer := range layers {
		for ext, lang := range layer.LanguageMap {
			eff.LanguageMap[ext] = lang
		}
		for name, lang := range layer.FilenameMap {
			eff.FilenameMap[strings.ToLower(name)] = lang
		}
		for _, ext := range layer.TextExtensions {
			eff.TextExtensions[ext] = true
		}
		eff.IgnorePatterns = append(eff.IgnorePatterns, layer.IgnorePatterns...)
		if layer.DefaultLanguage != nil {
			eff.DefaultLanguage = *layer.DefaultLanguage
		}
	}

	return eff
}
