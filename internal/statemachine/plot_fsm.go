package statemachine

import (
	"context"
	"fmt"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/looplab/fsm"
)

// PlotFSM wraps a plot with its state machine
type PlotFSM struct {
	plot *models.Plot
	fsm  *fsm.FSM
}

// NewPlotFSM creates a new plot state machine
func NewPlotFSM(plot *models.Plot) *PlotFSM {
	pfsm := &PlotFSM{
		plot: plot,
	}

	// A booked or sold plot consumes parcel area permanently: there is no
	// transition back to available, even when the booking is cancelled.
	pfsm.fsm = fsm.NewFSM(
		plot.Status,
		fsm.Events{
			// available → booked
			{Name: "book", Src: []string{models.PlotStatusAvailable}, Dst: models.PlotStatusBooked},

			// booked → sold
			{Name: "sell", Src: []string{models.PlotStatusBooked}, Dst: models.PlotStatusSold},
		},
		fsm.Callbacks{},
	)

	return pfsm
}

// Book transitions plot to booked state
func (p *PlotFSM) Book(ctx context.Context) error {
	if !p.plot.MayBook() {
		return fmt.Errorf("plot cannot be booked in current state: %s", p.plot.Status)
	}

	if err := p.fsm.Event(ctx, "book"); err != nil {
		return fmt.Errorf("failed to book plot: %w", err)
	}

	p.plot.Status = p.fsm.Current()
	return nil
}

// Sell transitions plot to sold state
func (p *PlotFSM) Sell(ctx context.Context) error {
	if !p.plot.MaySell() {
		return fmt.Errorf("plot sale cannot be confirmed in current state: %s", p.plot.Status)
	}

	if err := p.fsm.Event(ctx, "sell"); err != nil {
		return fmt.Errorf("failed to confirm plot sale: %w", err)
	}

	p.plot.Status = p.fsm.Current()
	return nil
}

// Current returns the current state
func (p *PlotFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *PlotFSM) Can(event string) bool {
	return p.fsm.Can(event)
}
