package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Column prefixes marking feature columns in a long-format CSV document.
const (
	dynamicRealPrefix = "real:"
	staticCatPrefix   = "cat:"
)

// ReadCSV loads a dataset from long-format CSV records. The header must
// contain "item", "timestamp" (unix seconds) and "target" columns; every
// column prefixed with "real:" is read as a dynamic real feature and every
// column prefixed with "cat:" as a static categorical code. Rows of one
// item must be contiguous and in chronological order.
func ReadCSV(r io.Reader) (Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv document has no data rows")
	}

	itemCol, tsCol, targetCol := -1, -1, -1
	var realCols, catCols []int
	for i, name := range records[0] {
		switch {
		case name == "item":
			itemCol = i
		case name == "timestamp":
			tsCol = i
		case name == "target":
			targetCol = i
		case strings.HasPrefix(name, dynamicRealPrefix):
			realCols = append(realCols, i)
		case strings.HasPrefix(name, staticCatPrefix):
			catCols = append(catCols, i)
		default:
			return nil, fmt.Errorf("unknown csv column %q", name)
		}
	}
	if itemCol < 0 || tsCol < 0 || targetCol < 0 {
		return nil, fmt.Errorf("csv header must contain item, timestamp and target columns, got %v", records[0])
	}

	var ds Dataset
	var cur *Entry
	for row := 1; row < len(records); row++ {
		rec := records[row]
		item := rec[itemCol]

		ts, err := strconv.ParseInt(rec[tsCol], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad timestamp %q: %v", row, rec[tsCol], err)
		}
		target, err := strconv.ParseFloat(rec[targetCol], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad target %q: %v", row, rec[targetCol], err)
		}

		if cur == nil || cur.ItemID != item {
			ds = append(ds, Entry{ItemID: item, Start: time.Unix(ts, 0)})
			cur = &ds[len(ds)-1]
			cur.FeatDynamicReal = make([][]float64, len(realCols))
			for _, col := range catCols {
				code, err := strconv.Atoi(rec[col])
				if err != nil {
					return nil, fmt.Errorf("row %d: bad categorical code %q: %v", row, rec[col], err)
				}
				cur.FeatStaticCat = append(cur.FeatStaticCat, code)
			}
		}

		cur.Target = append(cur.Target, target)
		for j, col := range realCols {
			v, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad dynamic feature %q: %v", row, rec[col], err)
			}
			cur.FeatDynamicReal[j] = append(cur.FeatDynamicReal[j], v)
		}
	}

	if len(realCols) == 0 {
		for i := range ds {
			ds[i].FeatDynamicReal = nil
		}
	}

	return ds, nil
}
