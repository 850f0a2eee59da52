/* Campus Emissions Tracker (CET) is a component of the DataCan GreenDesk (GD) Platform.
License:

	[PROPER LEGALESE HERE...]

	INTERIM LICENSE DESCRIPTION:
	In spirit, this license:
	1. Allows <Third Party> to use, modify, and / or distributre this software in perpetuity so long as <Third Party> understands:
		a. The software is porvided as is without guarantee of additional support from DataCan in any form.
		b. The software is porvided as is without guarantee of exclusivity.

	2. Prohibits <Third Party> from taking any action which might interfere with DataCan's right to use, modify and / or distributre this software in perpetuity.
*/

package pkg

import (
	"github.com/go-playground/validator/v10" // go get github.com/go-playground/validator/v10
	"github.com/google/uuid"                 // go get github.com/google/uuid

	"gorm.io/gorm"
)

const ROLE_ADMIN = "admin"
const ROLE_INSTITUTE = "institute"

/* TENANT / ACCOUNT SCOPE; ALL CONSUMPTION DATA IS PARTITIONED PER INSTITUTE */
type Institute struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Username      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password      string    `gorm:"type:varchar(100);not null"`
	InstituteName string    `gorm:"type:varchar(255);not null"`
	Address       string    `gorm:"type:text"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	Role          string    `gorm:"type:varchar(50);default:'institute';not null"`
	CreatedAt     int64     `gorm:"autoCreateTime:milli"`
	UpdatedAt     int64     `gorm:"autoUpdateTime:milli"`
}

/* ASSIGN THE KEY HERE RATHER THAN IN SQL; WORKS ON POSTGRES AND THE SQLITE TEST DATABASES ALIKE */
func (inst *Institute) BeforeCreate(tx *gorm.DB) (err error) {
	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	return
}

type RegisterInstituteInput struct {
	Username      string `json:"username" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	InstituteName string `json:"institute_name" validate:"required"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
}

type LoginInstituteInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

/* PROFILE SHAPE RETURNED BY THE API; NEVER INCLUDES THE PASSWORD HASH */
type InstituteResponse struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	InstituteName string    `json:"institute_name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	CreatedAt     int64     `json:"created_at"`
}

func (inst *Institute) FilterInstituteRecord() InstituteResponse {
	return InstituteResponse{
		ID:            inst.ID,
		Username:      inst.Username,
		Email:         inst.Email,
		InstituteName: inst.InstituteName,
		Address:       inst.Address,
		City:          inst.City,
		State:         inst.State,
		CreatedAt:     inst.CreatedAt,
	}
}

var validate = validator.New()

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

func ValidateStruct[T any](payload T) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(payload)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
