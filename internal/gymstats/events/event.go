package events

import (
	"strconv"
	"time"

	"github.com/2beens/gymprs/internal/gymstats/records"
)

// Event (DB level type) is a notification emitted by the PR engine, such as:
//   - personal record set (with the record snapshot)
//   - ledger recalculated (with the replay counts)
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewPersonalRecordEvent(rec records.PersonalRecord) Event {
	data := map[string]string{
		"user_id":     strconv.Itoa(rec.UserID),
		"exercise_id": rec.ExerciseID,
		"lift_log_id": strconv.Itoa(rec.LiftLogID),
		"record_id":   strconv.Itoa(rec.ID),
		"pr_type":     rec.Type.String(),
		"weight":      formatFloat(rec.Weight),
		"value":       formatFloat(rec.Value),
	}
	if rec.RepCount != nil {
		data["rep_count"] = strconv.Itoa(*rec.RepCount)
	}
	if rec.PreviousValue != nil {
		data["previous_value"] = formatFloat(*rec.PreviousValue)
	}

	return Event{
		Type:      EventTypePersonalRecord,
		Timestamp: rec.AchievedAt,
		Data:      data,
	}
}

func NewLedgerRecalculatedEvent(userID int, exerciseID, reason string, result records.RecalculationResult, at time.Time) Event {
	return Event{
		Type:      EventTypeLedgerRecalculated,
		Timestamp: at,
		Data: map[string]string{
			"user_id":         strconv.Itoa(userID),
			"exercise_id":     exerciseID,
			"reason":          reason,
			"logs_processed":  strconv.Itoa(result.LogsProcessed),
			"records_deleted": strconv.Itoa(result.RecordsDeleted),
			"records_created": strconv.Itoa(result.RecordsCreated),
		},
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// EventType can be one of:
//   - personal_record
//   - ledger_recalculated
type EventType string

const (
	EventTypePersonalRecord     EventType = "personal_record"
	EventTypeLedgerRecalculated EventType = "ledger_recalculated"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypePersonalRecord,
		EventTypeLedgerRecalculated:
		return true
	default:
		return false
	}
}
