package model

import (
	"paroisse/shared/model"
)

const (
	TableName  = "parishes"
	EntityName = "parish"

	FieldID           = "id"
	FieldName         = "name"
	FieldCity         = "city"
	FieldPhone        = "phone"
	FieldCode         = "code"
	FieldAnnouncement = "announcement"
)

// Parish is a church publishing its weekly celebration hours.
type Parish struct {
	ID           int64  `db:"id" readonly:"true"`
	Name         string `db:"name"`
	City         string `db:"city"`
	Phone        string `db:"phone"`
	Code         string `db:"code"`
	Announcement string `db:"announcement"`
	Schedule
	model.Metadata
}

func (p Parish) Exists() bool {
	return p.ID != 0
}
