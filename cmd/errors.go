package cmd

import "errors"

var (
	errGeminiNotConfigured = errors.New("gemini configuration is required under embedding.gemini")
	errOpenAINotConfigured = errors.New("openai configuration is required under embedding.openai")
)
