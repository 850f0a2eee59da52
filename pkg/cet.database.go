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
	"strings"

	"golang.org/x/crypto/bcrypt" // go get golang.org/x/crypto/bcrypt

	"gorm.io/driver/postgres" // go get gorm.io/driver/postgres
	"gorm.io/gorm"            // go get gorm.io/gorm
	"gorm.io/gorm/logger"
)

/*
	DATABASE CLIENT

ALL CET DATA IS ACCESSED VIA A DBClient
*/
type DBClient struct {
	ConnStr string
	*gorm.DB
}

/* THE CET DATABASE - INSTITUTES, EMISSION FACTORS AND CONSUMPTION RECORDS */
var CET = DBClient{}

func (dbc *DBClient) Connect() (err error) {

	if dbc.ConnStr == "" {
		dbc.ConnStr = CET_DB_CONNECTION_STRING
	}

	if dbc.DB, err = gorm.Open(postgres.Open(dbc.ConnStr), &gorm.Config{}); err != nil {
		return LogErr(err)
	}
	dbc.DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	dbc.DB.Logger = logger.Default.LogMode(logger.Error)

	return
}

func (dbc *DBClient) Close() (err error) {
	db, err := dbc.DB.DB()
	if err != nil {
		return LogErr(err)
	}
	if err = db.Close(); err != nil {
		return LogErr(err)
	}
	return
}

/* CREATE OR MIGRATE CET TABLES; BOOTSTRAP THE ADMINISTRATOR AND REFERENCE DATA ON FIRST RUN */
func (dbc *DBClient) CreateCETTables() (err error) {

	if err = dbc.DB.AutoMigrate(
		&Institute{},
		&EmissionFactor{},
		&ConsumptionRecord{},
	); err != nil {
		return LogErr(err)
	}

	count := int64(0)
	dbc.DB.Model(&Institute{}).Count(&count)
	if count == 0 {

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(SPR_PW), bcrypt.DefaultCost)
		admin := Institute{
			Username:      SPR_USER,
			Email:         strings.ToLower(SPR_EMAIL),
			Password:      string(hashedPassword),
			InstituteName: "DataCan GreenDesk Administration",
			Role:          ROLE_ADMIN,
		}
		if res := dbc.DB.Create(&admin); res.Error != nil {
			return LogErr(res.Error)
		}
	}

	/* REFERENCE DATA - SAFE TO RUN ON EVERY START; UPSERTS BY (CATEGORY, SUB_CATEGORY) */
	return SeedEmissionFactors(dbc.DB)
}

/* DROP ALL CET TABLES; USED WITH THE -clean FLAG ONLY */
func (dbc *DBClient) DropCETTables() (err error) {

	if err = dbc.DB.Migrator().DropTable(
		&ConsumptionRecord{},
		&EmissionFactor{},
		&Institute{},
	); err != nil {
		return LogErr(err)
	}
	return
}
