package extracting

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "car_sales_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestExtract_ReadsHeaderAndRowsInOrder(t *testing.T) {
	service := NewService()

	path := writeSourceFile(t,
		"Model,Year,Region\n"+
			"BMW X5,2020,North America\n"+
			"320i,2018,Europe\n",
	)

	table, err := service.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Model", "Year", "Region"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"BMW X5", "2020", "North America"}, table.Rows[0])
	assert.Equal(t, []string{"320i", "2018", "Europe"}, table.Rows[1])
}

func TestExtract_HeaderOnlyFile(t *testing.T) {
	service := NewService()

	path := writeSourceFile(t, "Model,Year,Region\n")

	table, err := service.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Model", "Year", "Region"}, table.Header)
	assert.Empty(t, table.Rows)
}

func TestExtract_MissingFile(t *testing.T) {
	service := NewService()

	_, err := service.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestExtract_EmptyFile(t *testing.T) {
	service := NewService()

	path := writeSourceFile(t, "")

	_, err := service.Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrMalformedSource)
}

func TestExtract_BrokenQuoting(t *testing.T) {
	service := NewService()

	path := writeSourceFile(t,
		"Model,Year\n"+
			"\"BMW X5,2020\n",
	)

	_, err := service.Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrMalformedSource)
}

func TestExtract_RowsShorterThanHeaderAreKept(t *testing.T) {
	service := NewService()

	path := writeSourceFile(t,
		"Model,Year,Region\n"+
			"i4,2023\n",
	)

	table, err := service.Extract(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"i4", "2023"}, table.Rows[0])
}
