package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LanguageInfo holds details about one language. Only the fields relevant
// for extension mapping are read.
type LanguageInfo struct {
	Type       string   `yaml:"type"` // e.g., programming, data, markup
	Extensions []string `yaml:"extensions"`
}

// LanguageMap maps language names (e.g., "C") to their details.
type LanguageMap map[string]LanguageInfo

// LoadedLanguageData holds the parsed language map plus a reverse index from
// extension to language name, used for the per-language summary breakdown.
type LoadedLanguageData struct {
	Langs        LanguageMap
	extensionMap map[string]string
}

// languageConfigPaths returns the directories searched for languages.yml,
// in priority order.
func languageConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "linebolt"))
	}
	return append(paths, ".")
}

// loadLanguageData loads languages.yml from the standard config locations.
// The file is optional: when it is absent the breakdown is simply omitted,
// so (nil, nil) is returned rather than an error.
func loadLanguageData() (*LoadedLanguageData, error) {
	return loadLanguageDataFrom(languageConfigPaths())
}

func loadLanguageDataFrom(configPaths []string) (*LoadedLanguageData, error) {
	var langFilePath string
	for _, p := range configPaths {
		testPath := filepath.Join(p, "languages.yml")
		if _, err := os.Stat(testPath); err == nil {
			langFilePath = testPath
			break
		}
	}
	if langFilePath == "" {
		return nil, nil
	}

	yamlFile, err := os.ReadFile(langFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading language file %s: %w", langFilePath, err)
	}

	var langs LanguageMap
	if err := yaml.Unmarshal(yamlFile, &langs); err != nil {
		return nil, fmt.Errorf("error parsing language file %s: %w", langFilePath, err)
	}

	data := &LoadedLanguageData{
		Langs:        langs,
		extensionMap: make(map[string]string),
	}
	for name, info := range langs {
		for _, ext := range info.Extensions {
			data.extensionMap[strings.ToLower(ext)] = name
		}
	}
	return data, nil
}

// LanguageForExt resolves a lowercased extension (e.g., ".c") to a language
// name.
func (l *LoadedLanguageData) LanguageForExt(ext string) (string, bool) {
	name, ok := l.extensionMap[ext]
	return name, ok
}
