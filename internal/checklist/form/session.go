package form

import "github.com/bouvin87/System-by-Sections/internal/checklist/entity"

// Session is the single mutable aggregate of one form run: identification
// fields plus the response store. Created fresh per session, discarded on
// close or successful submit. Not safe for concurrent use; all mutation
// happens on the UI event path.
type Session struct {
	ChecklistID   string
	OperatorName  string
	WorkTaskID    string
	WorkStationID string
	ShiftID       string

	selectedTask *entity.WorkTask
	answers      map[string]interface{}
}

// NewSession creates an empty session for a checklist.
func NewSession(checklistID string) *Session {
	return &Session{
		ChecklistID: checklistID,
		answers:     make(map[string]interface{}),
	}
}

// SetOperatorName stores the operator name as typed; trimming happens at
// validation so the field echoes exactly what was entered.
func (s *Session) SetOperatorName(name string) {
	s.OperatorName = name
}

// SelectWorkTask selects a work task (nil clears the selection). The station
// selection survives only when the same task stays selected and that task has
// stations; in every other case it is cleared.
func (s *Session) SelectWorkTask(task *entity.WorkTask) {
	if task == nil {
		s.WorkTaskID = ""
		s.selectedTask = nil
		s.WorkStationID = ""
		return
	}
	if s.WorkTaskID != task.ID {
		s.WorkStationID = ""
	}
	t := *task
	s.WorkTaskID = t.ID
	s.selectedTask = &t
	if !t.HasStations {
		s.WorkStationID = ""
	}
}

// SelectedWorkTask returns the currently selected work task, if any.
func (s *Session) SelectedWorkTask() *entity.WorkTask {
	return s.selectedTask
}

// SelectWorkStation sets the station. Ignored unless the selected work task
// requires stations, keeping the station invariant intact.
func (s *Session) SelectWorkStation(stationID string) {
	if s.selectedTask == nil || !s.selectedTask.HasStations {
		return
	}
	s.WorkStationID = stationID
}

// SelectShift sets the shift.
func (s *Session) SelectShift(shiftID string) {
	s.ShiftID = shiftID
}

// AutoSelectWorkTask selects the task automatically when exactly one
// candidate exists. Reports whether a selection was made.
func (s *Session) AutoSelectWorkTask(candidates []entity.WorkTask) bool {
	if len(candidates) != 1 {
		return false
	}
	s.SelectWorkTask(&candidates[0])
	return true
}

// SetAnswer validates and stores a response for a question. A nil value
// clears the stored response (widget was emptied).
func (s *Session) SetAnswer(q entity.Question, value interface{}) error {
	if value == nil {
		delete(s.answers, q.ID)
		return nil
	}
	answer, err := ParseAnswer(q, value)
	if err != nil {
		return err
	}
	s.answers[q.ID] = answer.Value()
	return nil
}

// Answer returns the stored response for a question id.
func (s *Session) Answer(questionID string) (interface{}, bool) {
	v, ok := s.answers[questionID]
	return v, ok
}

// Answers returns a copy of the response store.
func (s *Session) Answers() map[string]interface{} {
	out := make(map[string]interface{}, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Reset clears all session state, keeping only the checklist binding.
func (s *Session) Reset() {
	s.OperatorName = ""
	s.WorkTaskID = ""
	s.WorkStationID = ""
	s.ShiftID = ""
	s.selectedTask = nil
	s.answers = make(map[string]interface{})
}
