package dataset

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/glucose-insights/common"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

// Load reads the readings file at path. It never fails past its boundary:
// on any error it returns an empty, non-nil Dataset together with the error.
func Load(ctx context.Context, path string) (*model.Dataset, error) {
	return LoadSheet(ctx, path, "")
}

// LoadSheet is Load with an explicit worksheet for workbook files.
// An empty sheet selects the first one.
func LoadSheet(ctx context.Context, path, sheet string) (ds *model.Dataset, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("LoadSheet recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("path", path))
			ds, err = model.EmptyDataset(), errors.Errorf("load %s: panic: %v", path, r)
		}
	}()

	readings, err := load(ctx, path, sheet)
	if err != nil {
		err = errors.Wrapf(err, "load %s", path)
		logger.Error("load dataset failed, using empty dataset", zap.String("path", path), zap.Error(err))
		return model.EmptyDataset(), err
	}

	ds = model.NewDataset(readings)
	logger.Info("dataset loaded", zap.String("path", path), zap.String("dataset", ds.DebugString()))
	return ds, nil
}

func load(ctx context.Context, path, sheet string) ([]model.Reading, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		header, rows, err = readXLSX(path, sheet)
	case ".csv":
		header, rows, err = readCSV(path)
	default:
		return nil, errors.Wrapf(common.ErrorUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, err
	}
	return parseRecords(ctx, header, rows)
}
