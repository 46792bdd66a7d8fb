package dataset

import (
	"github.com/pkg/errors"
	"github.com/uyouii/glucose-insights/common"
	"github.com/xuri/excelize/v2"
)

func readXLSX(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, errors.Wrap(common.ErrorMissingColumn, "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, nil, errors.Wrapf(common.ErrorMissingColumn, "sheet %q is empty", sheet)
	}
	return rows[0], rows[1:], nil
}
