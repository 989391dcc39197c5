//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleConfig has one single and one multiple field
const sampleConfig = `version = 1

[ui]
log_level = "debug"
log_file = "%s"
filter = "substring"
escape = "keep_search"
select_all = "replace"
all_selected = "count"
autosave_values = true
max_rows = 8
mouse = false
id_style = "sequence"

[[fields]]
name = "color"
label = "Color"
type = "single"
placeholder = "Pick a color"

[[fields.options]]
label = "Red"
value = 1

[[fields.options]]
label = "Green"
value = 2

[[fields]]
name = "fruits"
label = "Fruits"
type = "multiple"
placeholder = "Pick fruits"

[[fields.options]]
label = "Apple"
value = "apple"

[[fields.options]]
label = "Banana"
value = "banana"

[[fields.options]]
label = "Cherry"
value = "cherry"
`

// CreateTestWorkspace creates a temporary directory for config and logs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteSampleConfig writes sampleConfig into the workspace and returns its path
func (tf *TUITestFramework) WriteSampleConfig() (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "selectbox.toml")
	logPath := filepath.Join(tf.workspace, "selectbox.log")
	if err := os.WriteFile(path, []byte(fmt.Sprintf(sampleConfig, logPath)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
