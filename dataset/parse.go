package dataset

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/uyouii/glucose-insights/common"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

const (
	TimeColumn  = "Time"
	ValueColumn = "Glucose Value"

	// TimeLayout matches exports like "Jan 5 2024, 3:45 PM".
	TimeLayout = "Jan 2 2006, 3:04 PM"
)

func ParseTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(common.ErrorParseTime, "%q", value)
	}
	return t, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// missingCell reports an empty cell, or the NaN marker spreadsheet exports use for one.
func missingCell(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}

func blankRow(row []string) bool {
	for _, c := range row {
		if !missingCell(c) {
			return false
		}
	}
	return true
}

// parseRecords turns a header plus data rows into readings, preserving source order.
// Rows with a missing time or glucose value, or a non-finite value, are skipped.
// Row numbers are 1-based and count the header row.
func parseRecords(ctx context.Context, header []string, rows [][]string) ([]model.Reading, error) {
	logger := utils.GetLogger(ctx)

	timeIdx, valueIdx := columnIndex(header, TimeColumn), columnIndex(header, ValueColumn)
	if timeIdx < 0 {
		return nil, errors.Wrapf(common.ErrorMissingColumn, "%q", TimeColumn)
	}
	if valueIdx < 0 {
		return nil, errors.Wrapf(common.ErrorMissingColumn, "%q", ValueColumn)
	}

	readings := make([]model.Reading, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		rawTime, raw := cell(row, timeIdx), cell(row, valueIdx)
		if missingCell(rawTime) || missingCell(raw) {
			logger.Warn("skip row with missing cell", zap.Int("row", i+2),
				zap.String("time", rawTime), zap.String("value", raw))
			continue
		}
		t, err := ParseTime(rawTime)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(common.ErrorParseValue, "row %d: %q", i+2, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			logger.Warn("skip row with non-finite glucose value", zap.Int("row", i+2), zap.String("value", raw))
			continue
		}
		readings = append(readings, model.Reading{Time: t, GlucoseValue: v})
	}
	return readings, nil
}
