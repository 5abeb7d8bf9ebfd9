package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhumicrm/bhumi-api/internal/models"
)

func TestPlotFSM_BookSellLifecycle(t *testing.T) {
	plot := &models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusAvailable}
	ctx := context.Background()

	pfsm := NewPlotFSM(plot)
	assert.True(t, pfsm.Can("book"))
	assert.NoError(t, pfsm.Book(ctx))
	assert.Equal(t, models.PlotStatusBooked, plot.Status)

	// A booked plot cannot be booked again
	assert.Error(t, NewPlotFSM(plot).Book(ctx))

	assert.NoError(t, NewPlotFSM(plot).Sell(ctx))
	assert.Equal(t, models.PlotStatusSold, plot.Status)

	// Sold is terminal: no re-sell, no re-book
	assert.Error(t, NewPlotFSM(plot).Sell(ctx))
	assert.Error(t, NewPlotFSM(plot).Book(ctx))
	assert.Equal(t, models.PlotStatusSold, plot.Status)
}

func TestPlotFSM_BookedPlotNeverReturnsToPool(t *testing.T) {
	plot := &models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusBooked}
	ctx := context.Background()

	// Booked area is consumed permanently: the only way forward is sell
	pfsm := NewPlotFSM(plot)
	assert.False(t, pfsm.Can("book"))
	assert.True(t, pfsm.Can("sell"))

	assert.Error(t, NewPlotFSM(plot).Book(ctx))
	assert.Equal(t, models.PlotStatusBooked, plot.Status)
}

func TestPlotFSM_AvailablePlotCannotBeSold(t *testing.T) {
	plot := &models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusAvailable}

	err := NewPlotFSM(plot).Sell(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.PlotStatusAvailable, plot.Status)
}
