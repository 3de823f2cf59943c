package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
)

// RunCleanBlacklist deletes blacklist entries whose tokens expired more than
// the given number of days ago. Expired tokens are rejected before the
// blacklist is consulted, so the rows only exist to keep the table from
// growing without bound. Intended to run periodically (e.g., a cron job).
// Supports dry-run mode to preview the deletion count.
//
// Requirements: Database must be migrated and accessible.
func RunCleanBlacklist(
	ctx context.Context,
	sessionUseCase authUseCase.SessionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	logger.Info("cleaning expired blacklist entries",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := sessionUseCase.CleanExpiredBlacklist(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to clean expired blacklist entries: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputCleanBlacklistJSON(writer, count, days, dryRun)
	} else {
		outputCleanBlacklistText(writer, count, days, dryRun)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// outputCleanBlacklistText outputs the result in human-readable text format.
func outputCleanBlacklistText(writer io.Writer, count int64, days int, dryRun bool) {
	if dryRun {
		fmt.Fprintf(writer, "Dry-run mode: Would delete %d blacklist entr(y/ies) expired more than %d day(s) ago\n", count, days)
	} else {
		fmt.Fprintf(writer, "Successfully deleted %d blacklist entr(y/ies) expired more than %d day(s) ago\n", count, days)
	}
}

// outputCleanBlacklistJSON outputs the result in JSON format for machine consumption.
func outputCleanBlacklistJSON(writer io.Writer, count int64, days int, dryRun bool) {
	result := map[string]interface{}{
		"count":   count,
		"days":    days,
		"dry_run": dryRun,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(writer, string(jsonBytes))
}
