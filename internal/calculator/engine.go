package calculator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnknownCalculator is returned when an event names a block that was
// never bound.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Engine owns one Calculator per calculator block of a page and routes
// events to the calculator of the block they came from. Blocks never share
// state.
type Engine struct {
	logger      *zap.Logger
	calculators map[string]*Calculator
	order       []string
}

// NewEngine returns an engine with no bound blocks.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, calculators: make(map[string]*Calculator)}
}

// Bind attaches every block of page. New blocks get a fresh calculator;
// blocks seen before are rebound in place. Each calculator is computed and
// its text fields formatted, as on page load.
func (e *Engine) Bind(page Page) []*Calculator {
	blocks := page.Blocks()
	bound := make([]*Calculator, 0, len(blocks))
	for _, block := range blocks {
		id := block.ID()
		calc, ok := e.calculators[id]
		if ok {
			calc.Rebind(block)
		} else {
			calc = NewCalculator(e.logger, block)
			e.calculators[id] = calc
			e.order = append(e.order, id)
		}
		calc.Recompute()
		calc.Blur()
		bound = append(bound, calc)
	}

	e.logger.Debug(fmt.Sprintf("bound %d calculator blocks", len(bound)),
		zap.String("op", "calculator.Engine.Bind"),
	)
	return bound
}

// Calculator returns the calculator bound to the block with the given id.
func (e *Engine) Calculator(id string) (*Calculator, bool) {
	calc, ok := e.calculators[id]
	return calc, ok
}

// Calculators returns all bound calculators in binding order.
func (e *Engine) Calculators() []*Calculator {
	calcs := make([]*Calculator, 0, len(e.order))
	for _, id := range e.order {
		calcs = append(calcs, e.calculators[id])
	}
	return calcs
}

// Dispatch applies change to the calculator of block id.
func (e *Engine) Dispatch(id string, change Change) error {
	calc, err := e.lookup(id)
	if err != nil {
		return err
	}
	calc.Apply(change)
	return nil
}

// Focus strips field of block id to its numeric content.
func (e *Engine) Focus(id string, field Field) error {
	calc, err := e.lookup(id)
	if err != nil {
		return err
	}
	calc.Focus(field)
	return nil
}

// Blur restores the display formatting of block id.
func (e *Engine) Blur(id string) error {
	calc, err := e.lookup(id)
	if err != nil {
		return err
	}
	calc.Blur()
	return nil
}

func (e *Engine) lookup(id string) (*Calculator, error) {
	calc, ok := e.calculators[id]
	if !ok {
		e.logger.Warn("event for unbound calculator block",
			zap.String("op", "calculator.Engine.lookup"),
			zap.String("block", id),
		)
		return nil, fmt.Errorf("%w: %s", ErrUnknownCalculator, id)
	}
	return calc, nil
}
