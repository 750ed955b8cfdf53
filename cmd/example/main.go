package main

import (
	"clearclaim-service/internal/app/config"
	"clearclaim-service/internal/app/drivers/logger"
	"clearclaim-service/internal/pkg/edi"
	"os"

	"github.com/sirupsen/logrus"
)

// Offline 835 inspector. Parses a remittance file from disk and prints the
// payment summary without touching the database, useful for eyeballing a
// payer file before letting the API post it.
func main() {
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	if len(os.Args) < 2 {
		log.Fatal("Usage: example <path-to-835-file>")
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}

	parser := edi.NewRemittanceParser()
	result, err := parser.Parse(string(raw))
	if err != nil {
		log.Fatalf("Error parsing remittance: %v", err)
	}
	doc := result.Document

	log.WithFields(logrus.Fields{
		"payer":        doc.Payer.Name,
		"payee":        doc.Payee.Name,
		"check_number": doc.CheckNumber,
		"check_date":   doc.CheckDate,
		"total_paid":   doc.TotalPaymentAmount.StringFixed(2),
		"claim_count":  len(doc.Claims),
	}).Info("Remittance parsed")

	for _, claim := range doc.Claims {
		log.WithFields(logrus.Fields{
			"claim_number": claim.ClaimNumber,
			"status_code":  claim.StatusCode,
			"charged":      claim.TotalCharge.StringFixed(2),
			"paid":         claim.PaymentAmount.StringFixed(2),
			"lines":        len(claim.ServiceLines),
		}).Info("Claim payment")
	}

	if adjusted := doc.TotalAdjustmentAmount(); !adjusted.IsZero() {
		log.WithField("total_adjustments", adjusted.StringFixed(2)).Info("Adjustments present")
	}

	for _, warning := range result.Warnings {
		log.WithField("warning", warning).Warn("Parser warning")
	}

	if internalConfig.EDI.EnforceMarylandMedicaid {
		if violations := edi.ValidateMarylandMedicaid(doc); len(violations) > 0 {
			for _, violation := range violations {
				log.WithField("violation", violation).Error("Maryland Medicaid validation failed")
			}
			os.Exit(1)
		}
		log.Info("Maryland Medicaid validation passed")
	}
}
