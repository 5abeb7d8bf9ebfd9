package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bhumicrm/bhumi-api/internal/storage"
	"github.com/bhumicrm/bhumi-api/pkg/logger"
)

// ArchiveService snapshots derived reports to local storage on a schedule.
// Since no derived figure is ever persisted in the database, these archives
// are the only durable record of what the numbers were on a given day.
type ArchiveService struct {
	reportSvc *ReportService
	store     *storage.LocalStorage
}

func NewArchiveService(reportSvc *ReportService, store *storage.LocalStorage) *ArchiveService {
	return &ArchiveService{
		reportSvc: reportSvc,
		store:     store,
	}
}

// ArchiveCommissions writes today's commission report CSV to storage and
// returns the relative path.
func (s *ArchiveService) ArchiveCommissions(ctx context.Context) (string, error) {
	buf, err := s.reportSvc.GenerateCommissionsCSV(ctx, "", "")
	if err != nil {
		return "", fmt.Errorf("failed to generate commissions report: %w", err)
	}

	filename := fmt.Sprintf("commissions_%s.csv", time.Now().Format("2006-01-02"))
	path, err := s.store.SaveReport(buf.Bytes(), filename, "reports/commissions")
	if err != nil {
		return "", fmt.Errorf("failed to archive commissions report: %w", err)
	}

	logger.Info(fmt.Sprintf("Archived commission report to %s", path))
	return path, nil
}

// ArchiveKisanLedger writes a colony's current payment ledger CSV to storage.
func (s *ArchiveService) ArchiveKisanLedger(ctx context.Context, colonyID uint) (string, error) {
	buf, err := s.reportSvc.GenerateKisanLedgerCSV(ctx, colonyID)
	if err != nil {
		return "", fmt.Errorf("failed to generate ledger report for colony %d: %w", colonyID, err)
	}

	filename := fmt.Sprintf("ledger_colony_%d_%s.csv", colonyID, time.Now().Format("2006-01-02"))
	path, err := s.store.SaveReport(buf.Bytes(), filename, "reports/ledgers")
	if err != nil {
		return "", fmt.Errorf("failed to archive ledger report: %w", err)
	}

	logger.Info(fmt.Sprintf("Archived kisan ledger for colony %d to %s", colonyID, path))
	return path, nil
}
