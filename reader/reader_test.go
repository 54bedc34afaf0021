package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulkread/table"
)

func TestNewKnownFormat(t *testing.T) {
	rd, ok, err := New("csv", Config{Header: true, Encoding: "UTF-8"})
	require.NoError(t, err)
	assert.True(t, ok)
	require.IsType(t, &CSV{}, rd)

	c := rd.(*CSV)
	assert.True(t, c.Header)
	assert.Equal(t, "UTF-8", c.Encoding)
}

func TestNewUnknownFormat(t *testing.T) {
	rd, ok, err := New("parquet", Config{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rd)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("csv", NewCSV)
	})
}

func TestRegisterNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("broken", nil)
	})
}

func TestFormats(t *testing.T) {
	assert.Contains(t, Formats(), "csv")
}

func TestFuncAdapter(t *testing.T) {
	called := ""
	rd := Func(func(path string, opts Options) (*table.Table, error) {
		called = path
		return table.New([]string{"x"})
	})

	tbl, err := rd.Read("some/file.dat", nil)
	require.NoError(t, err)
	assert.Equal(t, "some/file.dat", called)
	assert.Equal(t, []string{"x"}, tbl.Columns())
}

func TestOptionsString(t *testing.T) {
	opts := Options{"sheet": "Data", "bad": 7}

	s, err := opts.String("sheet", "")
	require.NoError(t, err)
	assert.Equal(t, "Data", s)

	s, err = opts.String("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	_, err = opts.String("bad", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want string")
}

func TestOptionsBool(t *testing.T) {
	opts := Options{"lazy_quotes": true, "bad": "yes"}

	b, err := opts.Bool("lazy_quotes", false)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = opts.Bool("missing", true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = opts.Bool("bad", false)
	require.Error(t, err)
}

func TestOptionsRune(t *testing.T) {
	opts := Options{"comma": ";", "tab": '\t', "long": "ab", "bad": 3.5}

	r, err := opts.Rune("comma", ',')
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	r, err = opts.Rune("tab", ',')
	require.NoError(t, err)
	assert.Equal(t, '\t', r)

	r, err = opts.Rune("missing", ',')
	require.NoError(t, err)
	assert.Equal(t, ',', r)

	_, err = opts.Rune("long", ',')
	require.Error(t, err)
	_, err = opts.Rune("bad", ',')
	require.Error(t, err)
}
