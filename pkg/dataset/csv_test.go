package dataset

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	start := time.Unix(1600000000, 0)

	var buf bytes.Buffer
	buf.WriteString("item,timestamp,target,real:price,cat:store\n")
	ts := start
	for i, v := range []float64{1.5, 2.0, 2.5} {
		buf.WriteString(fmt.Sprintf("a,%d,%v,%v,3\n", ts.Unix(), v, float64(i)))
		ts = ts.Add(time.Hour)
	}
	ts = start
	for _, v := range []float64{7.0, 8.0} {
		buf.WriteString(fmt.Sprintf("b,%d,%v,0.5,4\n", ts.Unix(), v))
		ts = ts.Add(time.Hour)
	}

	ds, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, len(ds))

	a := ds[0]
	assert.Equal(t, "a", a.ItemID)
	assert.True(t, a.Start.Equal(start))
	assert.Equal(t, []float64{1.5, 2.0, 2.5}, a.Target)
	require.Equal(t, 1, len(a.FeatDynamicReal))
	assert.Equal(t, []float64{0, 1, 2}, a.FeatDynamicReal[0])
	assert.Equal(t, []int{3}, a.FeatStaticCat)

	b := ds[1]
	assert.Equal(t, []float64{7, 8}, b.Target)
	assert.Equal(t, []int{4}, b.FeatStaticCat)
}

func TestReadCSVWithoutFeatureColumns(t *testing.T) {
	doc := "item,timestamp,target\nx,1600000000,1\nx,1600003600,2\n"

	ds, err := ReadCSV(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 1, len(ds))
	assert.Empty(t, ds[0].FeatDynamicReal)
	assert.Empty(t, ds[0].FeatStaticCat)
}

func TestReadCSVRejectsUnknownColumn(t *testing.T) {
	doc := "item,timestamp,target,comment\nx,1600000000,1,hello\n"
	_, err := ReadCSV(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment")
}

func TestReadCSVRejectsBadTarget(t *testing.T) {
	doc := "item,timestamp,target\nx,1600000000,abc\n"
	_, err := ReadCSV(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad target")
}

func TestReadCSVRejectsEmptyDocument(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("item,timestamp,target\n"))
	require.Error(t, err)
}
