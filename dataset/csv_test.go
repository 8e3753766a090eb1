package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railpath/core"
	"github.com/katalvlaran/railpath/dataset"
)

const shinkansen = `Source_Stations,Destination_Stations,Line,Distance_(Km),Cost_(Yen),Durations_(Min)
Tokyo,Shinagawa,Tokaido,6.8,3330,7
Shinagawa,Shin-Yokohama,Tokaido,22,3330,11
Tokyo,Ueno,Tohoku,3.6,2180,5
`

func TestReadCSV(t *testing.T) {
	records, err := dataset.ReadCSV(strings.NewReader(shinkansen), dataset.DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, dataset.Record{
		Source: "Tokyo", Destination: "Shinagawa", Line: "Tokaido",
		Distance: 6.8, Cost: 3330, Duration: 7,
	}, records[0])
	assert.Equal(t, "Tohoku", records[2].Line)
}

func TestReadCSV_HeaderByName(t *testing.T) {
	in := "Note,Line,Durations_(Min),Destination_Stations,Cost_(Yen),Source_Stations,Distance_(Km)\n" +
		"x, Akita ,60, Akita ,8000, Morioka ,127\n"
	records, err := dataset.ReadCSV(strings.NewReader(in), dataset.DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Morioka", records[0].Source)
	assert.Equal(t, "Akita", records[0].Destination)
	assert.Equal(t, 127.0, records[0].Distance)
	assert.Equal(t, 60.0, records[0].Duration)
}

func TestReadCSV_CustomColumns(t *testing.T) {
	cols := dataset.Columns{
		Source: "from", Destination: "to", Line: "line",
		Distance: "km", Cost: "fare", Duration: "min", Comma: ';',
	}
	records, err := dataset.ReadCSV(strings.NewReader("from;to;line;km;fare;min\nA;B;X;1;2;3\n"), cols)
	require.NoError(t, err)
	assert.Equal(t, []dataset.Record{{Source: "A", Destination: "B", Line: "X", Distance: 1, Cost: 2, Duration: 3}}, records)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader(""), dataset.DefaultColumns())
	require.ErrorIs(t, err, dataset.ErrMissingColumn)

	_, err = dataset.ReadCSV(strings.NewReader("Source_Stations,Line\nA,X\n"), dataset.DefaultColumns())
	require.ErrorIs(t, err, dataset.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Destination_Stations")

	bad := strings.Replace(shinkansen, "22,", "twenty-two,", 1)
	_, err = dataset.ReadCSV(strings.NewReader(bad), dataset.DefaultColumns())
	require.ErrorIs(t, err, dataset.ErrBadValue)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shinkansen.csv")
	require.NoError(t, os.WriteFile(path, []byte(shinkansen), 0o600))

	records, err := dataset.LoadCSVFile(context.Background(), path, dataset.DefaultColumns())
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = dataset.LoadCSVFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), dataset.DefaultColumns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can not open")
}

func TestBuild(t *testing.T) {
	records, err := dataset.ReadCSV(strings.NewReader(shinkansen), dataset.DefaultColumns())
	require.NoError(t, err)

	g, err := dataset.Build(records)
	require.NoError(t, err)
	assert.Equal(t, 4, g.StationCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"Tohoku", "Tokaido"}, g.Lines())
	assert.Len(t, g.Neighbors("Tokyo"), 2)
	assert.Len(t, g.Neighbors("Ueno"), 1)

	g, err = dataset.Build(records, core.WithDirected())
	require.NoError(t, err)
	assert.Empty(t, g.Neighbors("Ueno"))

	_, err = dataset.Build([]dataset.Record{{Source: "A", Destination: "B", Line: "X", Distance: -1}})
	require.ErrorIs(t, err, core.ErrBadWeight)
	assert.Contains(t, err.Error(), "record 1")
}
