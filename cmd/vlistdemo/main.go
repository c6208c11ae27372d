package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fulldump/goconfig"

	"github.com/ayn2op/vlist"
	"github.com/ayn2op/vlist/internal/configuration"
	"github.com/ayn2op/vlist/internal/logger"
	"github.com/ayn2op/vlist/modellist"
)

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
		return
	}

	if err := run(c); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(1)
	}
}

func run(c configuration.Configuration) error {
	if err := c.Validate(); err != nil {
		return err
	}
	layout, err := c.Layout()
	if err != nil {
		return err
	}
	border, _ := vlist.ParseBorderSet(c.Border)

	// The terminal belongs to the UI, so logs only go to a file.
	log := logger.Noop()
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		level := new(slog.LevelVar)
		if c.Debug {
			level.Set(slog.LevelDebug)
		}
		log = logger.NewSlog(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	records := modellist.New(modellist.WithLogger(log))
	seed := make([]modellist.Record, 0, c.Items+c.Duplicates)
	for i := 0; i < c.Items; i++ {
		seed = append(seed, newRecord(i))
	}
	// Records reusing an id stay listed but headless.
	for i := 0; i < c.Duplicates; i++ {
		seed = append(seed, newRecord(i*c.Items/max(c.Duplicates, 1)))
	}
	records.Add(0, seed...)
	log.Info("records loaded", logger.F("count", records.Len()))

	list := vlist.NewDataList(records).
		SetLogger(log).
		SetConfig(layout).
		SetRenderer(vlist.TextRenderer(vlist.FieldText("label")))
	list.SetBorders(vlist.BordersAll).
		SetBorderSet(border).
		SetTitle(" vlist ")
	defer list.Close()

	v := newView(records, list, log)
	app := vlist.NewApplication().SetLogger(log).SetRoot(v)

	list.SetSelectedFunc(func(index int, record modellist.Record) {
		list.SetTitle(fmt.Sprintf(" selected %s ", vlist.FieldText("label")(record, index)))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if c.Churn > 0 {
		go churn(ctx, app, v, time.Duration(c.Churn)*time.Millisecond)
	}

	return app.Run()
}

// churn appends a record every interval from outside the event loop.
func churn(ctx context.Context, app *vlist.Application, v *view, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.QueueUpdateDraw(func() {
				v.records.Add(v.records.Len(), v.newRecord())
				v.updateFooter()
			})
		}
	}
}
