package converter

import (
	"sort"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
)

// ScheduleToResponse renders a schedule with days in weekday order and
// slots in time order, regardless of storage order.
func ScheduleToResponse(schedule *entity.DoctorSchedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		DoctorID:         schedule.DoctorID,
		Schedule:         make([]dto.DayScheduleResponse, 0, len(schedule.Days)),
		UnavailableDates: make([]string, 0, len(schedule.UnavailableDates)),
		UpdatedAt:        schedule.UpdatedAt,
	}

	for _, dayName := range entity.DayNames {
		day := schedule.DayByName(dayName)
		if day == nil {
			continue
		}

		slots := make([]dto.SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, dto.SlotResponse{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime < slots[j].StartTime })

		resp.Schedule = append(resp.Schedule, dto.DayScheduleResponse{
			Day:   dayName,
			Slots: slots,
		})
	}

	for _, d := range schedule.UnavailableDates {
		resp.UnavailableDates = append(resp.UnavailableDates, d.Date)
	}
	sort.Strings(resp.UnavailableDates)

	return resp
}
