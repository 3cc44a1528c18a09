package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService renders every submission of a checklist as an xlsx workbook:
// identification columns first, then one column per question in form order.
type ExportService struct {
	definitions *DefinitionService
	responses   *repository.ResponseRepository
}

func NewExportService(definitions *DefinitionService, responses *repository.ResponseRepository) *ExportService {
	return &ExportService{definitions: definitions, responses: responses}
}

// Export builds the workbook. The caller owns closing the file. The returned
// name is a download file name derived from the checklist.
func (s *ExportService) Export(ctx context.Context, checklistID string) (*excelize.File, string, error) {
	def, err := s.definitions.Load(ctx, checklistID)
	if err != nil {
		return nil, "", err
	}
	responses, err := s.responses.ListAllByChecklist(ctx, checklistID)
	if err != nil {
		return nil, "", fmt.Errorf("load submissions: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Responses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Submitted at", "Operator"}
	if def.Checklist.IncludeWorkTasks {
		headers = append(headers, "Work task")
	}
	if def.Checklist.IncludeWorkStations {
		headers = append(headers, "Work station")
	}
	if def.Checklist.IncludeShifts {
		headers = append(headers, "Shift")
	}
	for _, q := range def.Questions {
		headers = append(headers, q.Text)
	}
	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, resp := range responses {
		values := []interface{}{
			resp.SubmittedAt.Format(time.DateTime),
			resp.OperatorName,
		}
		if def.Checklist.IncludeWorkTasks {
			values = append(values, taskName(def.WorkTasks, resp.WorkTaskID))
		}
		if def.Checklist.IncludeWorkStations {
			values = append(values, stationName(def.WorkStations, resp.WorkStationID))
		}
		if def.Checklist.IncludeShifts {
			values = append(values, shiftName(def.Shifts, resp.ShiftID))
		}
		for _, q := range def.Questions {
			values = append(values, cellValue(resp.Answers[q.ID]))
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	fileName := fmt.Sprintf("%s-responses-%s.xlsx", def.Checklist.Name, time.Now().Format("20060102"))
	return f, fileName, nil
}

func taskName(tasks []entity.WorkTask, id *string) string {
	if id == nil {
		return ""
	}
	for _, t := range tasks {
		if t.ID == *id {
			return t.Name
		}
	}
	return *id
}

func stationName(stations []entity.WorkStation, id *string) string {
	if id == nil {
		return ""
	}
	for _, st := range stations {
		if st.ID == *id {
			return st.Name
		}
	}
	return *id
}

func shiftName(shifts []entity.Shift, id *string) string {
	if id == nil {
		return ""
	}
	for _, sh := range shifts {
		if sh.ID == *id {
			return sh.Name
		}
	}
	return *id
}

// cellValue flattens stored answers for a spreadsheet cell. Booleans become
// readable yes/no values; numbers and strings pass through.
func cellValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return v
	}
}
