package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileTable_PrimaryKeyIsID(t *testing.T) {
	assert.Equal(t, "usuario", ProfileTable.Name)
	assert.Equal(t, []string{"id"}, ProfileTable.PrimaryKey())
}

func TestTable_PrimaryKey_Composite(t *testing.T) {
	tbl := Table{Name: "t", Columns: []Column{
		{Name: "a", PrimaryKey: true},
		{Name: "b"},
		{Name: "c", PrimaryKey: true},
	}}
	assert.Equal(t, []string{"a", "c"}, tbl.PrimaryKey())
	assert.Nil(t, Table{Name: "t", Columns: []Column{{Name: "a"}}}.PrimaryKey())
}

func TestTable_Missing(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    []string
	}{
		{"all present", []string{"id", "peso", "altura", "edad", "actividad"}, nil},
		{"extra columns ignored", []string{"id", "peso", "altura", "edad", "actividad", "extra"}, nil},
		{"some missing", []string{"id", "peso"}, []string{"altura", "edad", "actividad"}},
		{"empty", nil, []string{"id", "peso", "altura", "edad", "actividad"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ProfileTable.Missing(tc.present))
		})
	}
}
