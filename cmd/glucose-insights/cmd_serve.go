package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/uyouii/glucose-insights/config"
	"github.com/uyouii/glucose-insights/dataset"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/render"
	"github.com/uyouii/glucose-insights/server"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := utils.InitLogger(cfg.App.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, loadErr := loadDataset(ctx, cfg)
	if port == 0 {
		port = cfg.App.Port
	}

	utils.GetLogger(ctx).Info("starting glucose insights",
		zap.String("environment", cfg.App.Environment), zap.Int("port", port), zap.Int("rows", ds.Len()))

	srv := server.New(ds, loadErr, render.ChartOptions{Width: cfg.Chart.Width, Height: cfg.Chart.Height})
	return srv.Run(ctx, port)
}

// loadDataset applies the flag overrides and loads the readings. A failed load
// is logged and yields an empty dataset together with the error.
func loadDataset(ctx context.Context, cfg *config.Config) (*model.Dataset, error) {
	logger := utils.GetLogger(ctx)

	file := cfg.Data.File
	if dataFile != "" {
		file = dataFile
	}
	sheet := cfg.Data.Sheet
	if dataSheet != "" {
		sheet = dataSheet
	}

	path, err := utils.ResolvePath(file)
	if err != nil {
		err = errors.Wrapf(err, "resolve %s", file)
		logger.Error("resolve data file failed", zap.String("file", file), zap.Error(err))
		return model.EmptyDataset(), err
	}

	ds, err := dataset.LoadSheet(ctx, path, sheet)
	if err != nil {
		logger.Error("error loading data", zap.String("path", path), zap.Error(err))
	}
	return ds, err
}
