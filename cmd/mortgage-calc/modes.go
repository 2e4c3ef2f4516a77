package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/mortgage-calc/internal/calculator"
	"github.com/iwvelando/mortgage-calc/internal/config"
	"github.com/iwvelando/mortgage-calc/internal/markup"
	"github.com/iwvelando/mortgage-calc/internal/server"
	"github.com/iwvelando/mortgage-calc/internal/tui"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
	"github.com/iwvelando/mortgage-calc/pkg/output"
	"go.uber.org/zap"
)

// valueOverrides holds the flags that override configured calculator values.
type valueOverrides struct {
	price              float64
	downpayment        float64
	downpaymentPercent float64
	term               int
	interest           float64
	tax                float64
	hoa                float64
}

func (o *valueOverrides) register(fs *flag.FlagSet) {
	fs.Float64Var(&o.price, "price", 0, "home price override")
	fs.Float64Var(&o.downpayment, "downpayment", 0, "downpayment amount override")
	fs.Float64Var(&o.downpaymentPercent, "downpayment-percent", 0, "downpayment percentage override")
	fs.IntVar(&o.term, "term", 0, "term override in years")
	fs.Float64Var(&o.interest, "interest", 0, "annual interest percentage override")
	fs.Float64Var(&o.tax, "tax", 0, "monthly property tax override")
	fs.Float64Var(&o.hoa, "hoa", 0, "monthly HOA dues override")
}

// apply copies every flag set on fs into calc. A downpayment amount is
// converted into the percentage of the (possibly overridden) price.
func (o *valueOverrides) apply(fs *flag.FlagSet, calc *config.CalculatorConfig) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["price"] {
		calc.Price = o.price
	}
	if set["downpayment-percent"] {
		calc.DownpaymentPercent = o.downpaymentPercent
	}
	if set["downpayment"] {
		calc.DownpaymentPercent = mathutil.CalculatePercentage(o.downpayment, mathutil.Max(calc.Price, o.downpayment))
	}
	if set["term"] {
		calc.Term = o.term
	}
	if set["interest"] {
		calc.Interest = o.interest
	}
	if set["tax"] {
		calc.Tax = o.tax
	}
	if set["hoa"] {
		calc.HOA = o.hoa
	}
}

func runQuote(w io.Writer, calc config.CalculatorConfig, outputFormat, pdfPath string) error {
	quote, err := mortgage.NewQuote(calc.Values())
	if err != nil {
		return err
	}

	if err := output.Write(w, outputFormat, quote); err != nil {
		return fmt.Errorf("failed to write quote: %w", err)
	}

	if pdfPath == "" {
		return nil
	}
	f, err := os.Create(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", pdfPath, err)
	}
	if err := output.PDF(f, quote); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runRender(logger *zap.Logger, w io.Writer, htmlPath string) error {
	if htmlPath == "" {
		return errors.New("render mode needs -html")
	}

	f, err := os.Open(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", htmlPath, err)
	}
	defer f.Close()

	doc, err := markup.Parse(f)
	if err != nil {
		return err
	}

	engine := calculator.NewEngine(logger)
	for _, calc := range engine.Bind(doc) {
		logger.Info(fmt.Sprintf("calculator %s: %.2f per month", calc.ID(), calc.Result().PaymentPerMonth),
			zap.String("op", "main.runRender"),
			zap.String("variant", calc.Variant().String()),
		)
	}

	out, err := doc.HTML()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", htmlPath, err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func runServe(logger *zap.Logger, serverConfigPath string) error {
	cfg, err := server.LoadConfig(serverConfigPath)
	if err != nil {
		return err
	}

	// Server-specific logging replaces the main configuration's.
	if cfg.Logging != (config.LoggingConfig{}) {
		serverLogger, err := initializeLogger(cfg.Logging, "")
		if err != nil {
			return err
		}
		defer func() {
			_ = serverLogger.Sync()
		}()
		logger = serverLogger
	}

	srv := server.NewHTTPServer(cfg, server.NewHandler(logger, cfg.UploadSizeBytes(), version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on "+cfg.Address,
			zap.String("op", "main.runServe"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runTUI starts the terminal calculator. Logs only go to a configured file
// since the terminal belongs to the UI.
func runTUI(conf *config.Configuration) error {
	logger := zap.NewNop()
	if conf.Logging.OutputFile != "" {
		fileLogger, err := initializeLogger(conf.Logging, "")
		if err != nil {
			return err
		}
		logger = fileLogger
	}
	return tui.Run(tui.NewModel(logger, conf.Calculator))
}
