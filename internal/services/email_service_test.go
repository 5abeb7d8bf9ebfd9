package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailService_renderTemplate(t *testing.T) {
	service := &EmailService{}

	data := struct {
		Name             string
		PlotNo           string
		SaleAmount       string
		RatePct          string
		CommissionAmount string
		TDSAmount        string
		FinalAmount      string
		AppURL           string
	}{
		Name:             "Suresh Yadav",
		PlotNo:           "P-12",
		SaleAmount:       "₹800000.00",
		RatePct:          "3.00",
		CommissionAmount: "₹24000.00",
		TDSAmount:        "₹1200.00",
		FinalAmount:      "₹22800.00",
		AppURL:           appURL,
	}

	body, err := service.renderTemplate("commission_approved.html", data)
	assert.NoError(t, err)
	assert.Contains(t, body, "Suresh Yadav")
	assert.Contains(t, body, "P-12")
	assert.Contains(t, body, "₹22800.00")
	assert.Contains(t, body, appURL)
}

func TestEmailService_renderTemplate_MissingTemplate(t *testing.T) {
	service := &EmailService{}

	_, err := service.renderTemplate("no_such_template.html", nil)
	assert.Error(t, err)
}
