package dto

import (
	"fmt"
	"paroisse/internal/domains/parish/model"
	"paroisse/shared"
	gDto "paroisse/shared/dto"
	gModel "paroisse/shared/model"
	"paroisse/shared/timezone"
	"strconv"
	"strings"
	"time"
)

type CreateParishRequest struct {
	Name  string `json:"name"  validate:"required,notblank,max=100"`
	City  string `json:"city"  validate:"required,notblank,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Code  string `json:"code"  validate:"required,notblank,max=20"`
}

func (c *CreateParishRequest) ToModel() model.Parish {
	return model.Parish{
		Name:     strings.TrimSpace(c.Name),
		City:     strings.TrimSpace(c.City),
		Phone:    c.Phone,
		Code:     strings.TrimSpace(c.Code),
		Schedule: model.DefaultSchedule(),
		Metadata: gModel.NewMetadata(timezone.Now()),
	}
}

// UpdateParishRequest is the self-service update. Nil fields are left untouched.
type UpdateParishRequest struct {
	Code         string            `json:"code"         validate:"required"`
	Announcement *string           `json:"announcement" validate:"omitempty"`
	Phone        *string           `json:"phone"        validate:"omitempty,max=20"`
	Schedule     map[string]string `json:"schedule"     validate:"omitempty,dive,max=100"`
}

func (u *UpdateParishRequest) Empty() bool {
	return u.Announcement == nil && u.Phone == nil && len(u.Schedule) == 0
}

// Hours resolves the schedule keys to weekdays.
func (u *UpdateParishRequest) Hours() (map[model.Weekday]string, error) {
	hours := make(map[model.Weekday]string, len(u.Schedule))

	for key, value := range u.Schedule {
		day, err := model.ParseWeekday(key)
		if err != nil {
			return nil, err
		}

		hours[day] = strings.TrimSpace(value)
	}

	return hours, nil
}

type LoginRequest struct {
	Code string `json:"code" validate:"required,notblank"`
}

type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type ScheduleResponse []DayHours

func (r *ScheduleResponse) FromModel(schedule model.Schedule) {
	*r = make(ScheduleResponse, 0, len(model.Weekdays))

	for _, day := range model.Weekdays {
		*r = append(*r, DayHours{Day: string(day), Hours: schedule.Hours(day)})
	}
}

type ParishResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	City         string           `json:"city"`
	Phone        string           `json:"phone"`
	Announcement string           `json:"announcement"`
	Schedule     ScheduleResponse `json:"schedule"`
	gDto.Metadata
}

func (r *ParishResponse) FromModel(model model.Parish) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.Phone = model.Phone
	r.Announcement = model.Announcement
	r.Schedule.FromModel(model.Schedule)
	r.Metadata.FromModel(model.Metadata)
}

type GetParishesResponse struct {
	Parishes  []ParishResponse `json:"parishes"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetParishesResponse) FromModels(models []model.Parish, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Parishes = make([]ParishResponse, len(models))
	for i, mod := range models {
		r.Parishes[i].FromModel(mod)
	}
}

// ScheduleCatalog maps a parish id to its hours keyed by weekday number,
// "0" for Sunday through "6" for Saturday, as the booking form reads them.
type ScheduleCatalog map[string]map[string]string

func (c *ScheduleCatalog) FromModels(models []model.Parish) {
	*c = make(ScheduleCatalog, len(models))

	for _, parish := range models {
		days := make(map[string]string, len(model.Weekdays))

		for number := range 7 {
			day := model.WeekdayOf(time.Weekday(number))
			days[strconv.Itoa(number)] = parish.Hours(day)
		}

		(*c)[fmt.Sprint(parish.ID)] = days
	}
}
