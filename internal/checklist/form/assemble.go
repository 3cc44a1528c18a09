package form

import (
	"encoding/json"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
)

// OptionalID is an identifier field whose key appears in the payload only
// when the checklist configuration asked for it. The value may still be null
// when included but unset.
type OptionalID struct {
	Included bool
	Value    *string
}

// Submission is the final payload shape sent to the backend API.
type Submission struct {
	ChecklistID   string
	OperatorName  string
	Responses     map[string]interface{}
	IsCompleted   bool
	WorkTaskID    OptionalID
	WorkStationID OptionalID
	ShiftID       OptionalID
}

// MarshalJSON emits optional identifier keys only when their checklist flag
// included them, matching the API contract.
func (s Submission) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"checklistId":  s.ChecklistID,
		"operatorName": s.OperatorName,
		"responses":    s.Responses,
		"isCompleted":  s.IsCompleted,
	}
	if s.WorkTaskID.Included {
		payload["workTaskId"] = s.WorkTaskID.Value
	}
	if s.WorkStationID.Included {
		payload["workStationId"] = s.WorkStationID.Value
	}
	if s.ShiftID.Included {
		payload["shiftId"] = s.ShiftID.Value
	}
	return json.Marshal(payload)
}

// Assemble builds the submission payload from the accumulated session state.
// Responses pass through exactly as stored by the typed write path; the
// conditional identifier fields follow the checklist's include flags.
func Assemble(checklist entity.Checklist, sess *Session) Submission {
	return Submission{
		ChecklistID:  sess.ChecklistID,
		OperatorName: sess.OperatorName,
		Responses:    sess.Answers(),
		IsCompleted:  true,
		WorkTaskID: OptionalID{
			Included: checklist.IncludeWorkTasks,
			Value:    nullableID(sess.WorkTaskID),
		},
		WorkStationID: OptionalID{
			Included: checklist.IncludeWorkStations,
			Value:    nullableID(sess.WorkStationID),
		},
		ShiftID: OptionalID{
			Included: checklist.IncludeShifts,
			Value:    nullableID(sess.ShiftID),
		},
	}
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
