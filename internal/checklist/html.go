package checklist

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Task-list checkboxes come out as disabled <input type="checkbox">.
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.TaskList))

func (s *service) RenderHTML(progress ProgressMap) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(s.RenderMarkdown(progress)), &buf); err != nil {
		return "", fmt.Errorf("render checklist html: %w", err)
	}
	return buf.String(), nil
}
