package docs

import (
	_ "embed"
)

// InvestigationPrompt embeds the fraud ring investigation guidance.
// This prompt provides behavioral guidance for LLMs on how to run the
// analysis tools and interpret their output when investigating
// suspected fraud rings
//
//go:embed prompts/investigation.md
var InvestigationPrompt string
