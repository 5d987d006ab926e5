// Package configs provides the configuration files embedded in pinit.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// QuestionsYAML contains the questionnaire asked by `pinit ask`.
//
//go:embed questions.yaml
var QuestionsYAML []byte

// NotesTemplate is the skeleton written by `pinit template`.
//
//go:embed notes_template.md
var NotesTemplate []byte
