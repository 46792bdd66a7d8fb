package dataset

import (
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/uyouii/glucose-insights/common"
)

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open csv")
	}
	defer f.Close()

	// keep every column as text, times and values are parsed by parseRecords
	df := dataframe.ReadCSV(f, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	if df.Err != nil {
		return nil, nil, errors.Wrap(df.Err, "read csv")
	}

	records := df.Records()
	if len(records) == 0 {
		return nil, nil, errors.Wrap(common.ErrorMissingColumn, "csv has no header")
	}
	return records[0], records[1:], nil
}
