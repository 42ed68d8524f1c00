package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates root/rel with content, creating parent directories
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func readFile(t *testing.T, p string) string {
	t.Helper()

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(data)
}

// eventJSON renders an exported metadata document with one audio event
// carrying the given id/debug name pairs
func eventJSON(pairs ...string) string {
	var media []string
	for i := 0; i+1 < len(pairs); i += 2 {
		media = append(media, fmt.Sprintf(`{"MediaPathName": %q, "DebugName": %q}`, pairs[i], pairs[i+1]))
	}
	return fmt.Sprintf(`[{"Type": "AkAudioEvent", "EventCookedData": {"EventLanguageMap": [
  {"Key": "SFX", "Value": {"Media": [%s]}}
]}}]`, strings.Join(media, ", "))
}
