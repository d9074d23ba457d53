/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/warp/calendar-engine/dates"

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// RangeDTO represents a computed date range in API responses.
type RangeDTO struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Length   int      `json:"length"`
	Days     []string `json:"days"`
	Workdays []string `json:"workdays,omitempty"`
}

// ProgressDTO reports how much of a period has elapsed.
type ProgressDTO struct {
	Date      string `json:"date"`
	Frequency string `json:"frequency"`
	Progress  string `json:"progress"`
}

// HolidayDTO represents a holiday in API responses.
type HolidayDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

// CreateHolidayRequest is the request to add a holiday.
type CreateHolidayRequest struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// toRangeDTO converts a range, optionally attaching its workday subset.
func toRangeDTO(r dates.Range, cal dates.HolidayCalendar, withWorkdays bool) RangeDTO {
	dto := RangeDTO{
		Start:  r.Start.String(),
		End:    r.End.String(),
		Length: r.Len(),
		Days:   formatDays(r.Days()),
	}
	if withWorkdays {
		dto.Workdays = formatDays(r.Workdays(cal))
	}
	return dto
}

func formatDays(days []dates.Date) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}

func toHolidayDTO(h dates.Holiday) HolidayDTO {
	return HolidayDTO{
		ID:        h.ID,
		Date:      h.Date.String(),
		Name:      h.Name,
		Recurring: h.Recurring,
	}
}
