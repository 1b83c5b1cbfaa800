package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempFile writes content to a file under the test's temp dir.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadCSV tests CSV loading with header rows and type coercion.
func TestLoadCSV(t *testing.T) {
	path := writeTempFile(t, "orders.csv", "id,amount,active,note\n1,9.99,true,first\n2,15,false,\n")

	data, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, data, 2)

	assert.Equal(t, 1, data[0]["id"])
	assert.Equal(t, 9.99, data[0]["amount"])
	assert.Equal(t, true, data[0]["active"])
	assert.Equal(t, "first", data[0]["note"])

	// The empty cell stays an empty string, which profiling treats as null.
	assert.Equal(t, 15, data[1]["amount"])
	assert.Equal(t, "", data[1]["note"])
}

// TestLoadCSVRaggedRows tests that short rows are padded with empty strings.
func TestLoadCSVRaggedRows(t *testing.T) {
	path := writeTempFile(t, "ragged.csv", "a,b,c\n1,2\n")

	data, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, 1, data[0]["a"])
	assert.Equal(t, 2, data[0]["b"])
	assert.Equal(t, "", data[0]["c"])
}

// TestLoadJSON tests loading an array of objects.
func TestLoadJSON(t *testing.T) {
	path := writeTempFile(t, "users.json", `[{"name":"alice","age":30},{"name":"bob","age":null}]`)

	data, err := LoadJSON(path)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, "alice", data[0]["name"])
	assert.Equal(t, 30.0, data[0]["age"])
	assert.Nil(t, data[1]["age"])
}

// TestLoadJSONL tests line-delimited JSON loading with blank lines.
func TestLoadJSONL(t *testing.T) {
	path := writeTempFile(t, "events.jsonl", "{\"kind\":\"click\"}\n\n{\"kind\":\"view\"}\n")

	data, err := LoadJSONL(path)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, "click", data[0]["kind"])
	assert.Equal(t, "view", data[1]["kind"])
}

// TestLoadJSONLInvalidLine tests that a malformed line reports its number.
func TestLoadJSONLInvalidLine(t *testing.T) {
	path := writeTempFile(t, "bad.jsonl", "{\"ok\":true}\nnot-json\n")

	_, err := LoadJSONL(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

// TestLoadDataset tests extension-based dispatch.
func TestLoadDataset(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		path := writeTempFile(t, "d.csv", "x\n1\n")
		data, err := LoadDataset(path)
		require.NoError(t, err)
		assert.Len(t, data, 1)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := LoadDataset("data.parquet")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

// TestCoerceCell tests CSV cell coercion ordering.
func TestCoerceCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"empty", "", ""},
		{"bool true", "True", true},
		{"bool false", "false", false},
		{"integer", "42", 42},
		{"float", "3.14", 3.14},
		{"string", "hello", "hello"},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceCell(tt.in))
		})
	}
}
