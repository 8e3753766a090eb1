package dataset

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railpath/logging"
)

// failingCloser reads normally and fails on Close.
type failingCloser struct {
	io.Reader
}

func (failingCloser) Close() error { return errors.New("disk gone") }

func TestLoadCSV_CloseErrorUsesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewStructuredLogger(&buf, slog.LevelInfo))

	data := "Source_Stations,Destination_Stations,Line,Distance_(Km),Cost_(Yen),Durations_(Min)\nA,B,X,1,2,3\n"
	records, err := loadCSV(ctx, failingCloser{strings.NewReader(data)}, "net.csv", DefaultColumns())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	out := buf.String()
	assert.Contains(t, out, `"msg":"failed to close resource"`)
	assert.Contains(t, out, `"operation":"load_csv"`)
	assert.Contains(t, out, "disk gone")
}
