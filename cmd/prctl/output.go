package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/events"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/progression"
	"github.com/2beens/gymprs/internal/gymstats/records"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
	}
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderRecords(w io.Writer, recs []records.PersonalRecord, format string) error {
	if format == formatJSON {
		if recs == nil {
			recs = []records.PersonalRecord{}
		}
		return outputJSON(w, recs)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Chain", "Value", "Weight", "Achieved", "Log", "Previous"})
	for _, rec := range recs {
		previous := "-"
		if rec.PreviousPRID != nil && rec.PreviousValue != nil {
			previous = fmt.Sprintf("#%d (%s)", *rec.PreviousPRID, formatWeight(*rec.PreviousValue))
		}
		t.AppendRow(table.Row{
			rec.ID,
			rec.Key().String(),
			formatWeight(rec.Value),
			formatWeight(rec.Weight),
			rec.AchievedAt.UTC().Format(time.DateTime),
			rec.LiftLogID,
			previous,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "Total", len(recs)})
	t.Render()
	return nil
}

func renderSuggestion(w io.Writer, s *progression.Suggestion, format string) error {
	if format == formatJSON {
		return outputJSON(w, s)
	}
	if s == nil {
		_, err := fmt.Fprintln(w, "no suggestion available")
		return err
	}

	weight := formatWeight(s.SuggestedWeight)
	if s.WeightUnavailable {
		weight = "n/a"
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"", "Last", "Next"})
	t.AppendRows([]table.Row{
		{"Weight", formatWeight(s.LastWeight), weight},
		{"Reps", s.LastReps, s.SuggestedReps},
		{"Sets", s.LastSets, s.SuggestedSets},
	})
	t.SetCaption("%s strategy, based on log #%d from %s", s.Strategy, s.BasedOnLogID, s.LastLoggedAt.UTC().Format(time.DateOnly))
	t.Render()
	return nil
}

func renderOutcome(w io.Writer, scope liftlogs.Scope, outcome events.Outcome, format string) error {
	if format == formatJSON {
		return outputJSON(w, outcome)
	}

	t := newTable(w)
	t.SetTitle("scope %s: %s", scope, outcome.Action)
	if outcome.Recalculation != nil {
		t.AppendRows([]table.Row{
			{"Logs processed", outcome.Recalculation.LogsProcessed},
			{"Records deleted", outcome.Recalculation.RecordsDeleted},
			{"Records created", outcome.Recalculation.RecordsCreated},
		})
	}
	t.AppendRow(table.Row{"Reason", outcome.Reason})
	t.Render()
	return nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
