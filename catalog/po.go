package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RenderPO serializes one language's messages as a gettext PO file. The
// header precedes the entries; entries keep their catalog order.
func RenderPO(lang string, messages *Messages) string {
	var sb strings.Builder

	sb.WriteString("msgid \"\"\n")
	sb.WriteString("msgstr \"\"\n")
	sb.WriteString("\"Project-Id-Version: isced-go\\n\"\n")
	sb.WriteString(fmt.Sprintf("\"Language: %s\\n\"\n", lang))
	sb.WriteString("\"MIME-Version: 1.0\\n\"\n")
	sb.WriteString("\"Content-Type: text/plain; charset=UTF-8\\n\"\n")
	sb.WriteString("\"Content-Transfer-Encoding: 8bit\\n\"\n")

	for _, msg := range messages.Entries() {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("msgid \"%s\"\n", escapePO(msg.MsgID)))
		sb.WriteString(fmt.Sprintf("msgstr \"%s\"\n", escapePO(msg.MsgStr)))
	}

	return sb.String()
}

// WritePO writes one <lang>.po file per non-English language to dir,
// creating it if needed. English is the msgid key space and is never
// rendered to a file.
func WritePO(c *Catalog, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create locales directory: %w", err)
	}
	for _, lang := range c.Languages() {
		if lang == "en" {
			continue
		}
		path := filepath.Join(dir, lang+".po")
		content := RenderPO(lang, c.Language(lang))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write catalog %s: %w", path, err)
		}
	}
	return nil
}

// escapePO escapes special characters for PO string literals.
func escapePO(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
