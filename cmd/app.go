package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/oravec/nlcmd/internal/classify"
	"github.com/oravec/nlcmd/internal/dataset"
	"github.com/oravec/nlcmd/internal/engine"
	"github.com/oravec/nlcmd/internal/history"
	"github.com/oravec/nlcmd/internal/match"
	"github.com/oravec/nlcmd/internal/multicmd"
	"github.com/oravec/nlcmd/internal/output"
	"github.com/oravec/nlcmd/internal/platform"
	"github.com/oravec/nlcmd/internal/rules"
)

// app holds the wired collaborators for one invocation.
type app struct {
	fam    platform.Family
	log    *zap.Logger
	data   *dataset.Data
	engine *engine.Engine
	proc   *multicmd.Processor
	form   *output.Formatter
	hist   *history.Store
}

// newApp wires the resolution stack from config. A missing classifier key
// or history failure degrades the corresponding feature instead of
// aborting the command.
func newApp(ctx context.Context) (*app, error) {
	fam, err := platform.Parse(viper.GetString("os"))
	if err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if viper.GetBool("debug") {
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	data, err := loadData()
	if err != nil {
		return nil, err
	}

	var classifier classify.Classifier
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" || viper.GetBool("gemini.use_adc") {
		g, err := classify.NewGemini(ctx, apiKey, viper.GetString("gemini.model"), data)
		if err != nil {
			log.Warn("classifier unavailable, continuing without it", zap.Error(err))
		} else {
			classifier = g
		}
	}

	eng := engine.New(engine.Config{
		Family:      fam,
		Classifier:  classifier,
		Matcher:     match.New(data),
		Rules:       rules.New(fam),
		Templates:   true,
		MLThreshold: viper.GetFloat64("ml_threshold"),
		Logger:      log,
	})

	a := &app{
		fam:    fam,
		log:    log,
		data:   data,
		engine: eng,
		proc:   multicmd.New(eng, fam, log),
		form:   output.New(!viper.GetBool("no_color")),
	}

	if viper.GetBool("history.enabled") {
		path := viper.GetString("history.path")
		if path == "" {
			path, err = history.DefaultPath()
		}
		if err == nil {
			a.hist, err = history.Open(path)
		}
		if err != nil {
			log.Warn("history unavailable", zap.Error(err))
		}
	}

	return a, nil
}

func loadData() (*dataset.Data, error) {
	if path := viper.GetString("dataset"); path != "" {
		return dataset.LoadFile(path)
	}
	return dataset.Load()
}

func (a *app) close() {
	if a.hist != nil {
		a.hist.Close()
	}
	a.log.Sync()
}
