package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "Students", []string{"name", "semester", "notes"}, [][]interface{}{
		{"Asha", 3, ""},
		{"", "", ""},
		{" Ravi ", 5, "transfer"},
	})
	require.NoError(t, err)

	table, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "semester", "notes"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Asha", "3", ""}, table.Rows[0])
	assert.Equal(t, []string{"Ravi", "5", "transfer"}, table.Rows[1])
}

func TestRead_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Sheet", []string{"name"}, nil))

	table, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestRead_NotAWorkbook(t *testing.T) {
	_, err := Read(bytes.NewBufferString("name,semester\nAsha,3\n"))
	assert.Error(t, err)
}
