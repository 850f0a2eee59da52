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
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* THE AUTHENTICATED INSTITUTE; SET BY CetAuth */
func instIDFromLocals(c *fiber.Ctx) (instID uuid.UUID, err error) {
	return uuid.Parse(fmt.Sprintf("%v", c.Locals("sub")))
}

/* OPTIONAL ?year=&month= QUERY FILTERS */
func periodFromQuery(c *fiber.Ctx) (year, month int, err error) {

	if y := c.Query("year"); y != "" {
		if year, err = strconv.Atoi(y); err != nil || year < 1 {
			err = fmt.Errorf("Invalid year: %s", y)
			return
		}
	}
	if m := c.Query("month"); m != "" {
		if month, err = strconv.Atoi(m); err != nil || month < 1 || month > 12 {
			err = fmt.Errorf("Invalid month: %s", m)
			return
		}
	}
	return
}

func recordErrStatus(err error) int {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrRecordConflict):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func HandleGetConsumptionRecordList(c *fiber.Ctx) (err error) {

	instID, err := instIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": "You are not logged in",
		})
	}

	year, month, err := periodFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	recs, err := GetConsumptionRecordList(instID, year, month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	records := []ConsumptionRecordResponse{}
	for i := range recs {
		records = append(records, recs[i].FilterRecord())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"records": records},
	})
}

func HandleCreateConsumptionRecord(c *fiber.Ctx) (err error) {

	instID, err := instIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": "You are not logged in",
		})
	}

	input := ConsumptionRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	if errors := ValidateStruct(input); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	rec, err := CreateConsumptionRecord(instID, input)
	if err != nil {
		return c.Status(recordErrStatus(err)).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	MetricRecordWrites.WithLabelValues("create").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"record": rec.FilterRecord()},
	})
}

func HandleGetConsumptionRecord(c *fiber.Ctx) (err error) {

	instID, err := instIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": "You are not logged in",
		})
	}

	recID, err := c.ParamsInt("id")
	if err != nil || recID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid record id",
		})
	}

	rec, err := GetConsumptionRecord(instID, uint(recID))
	if err != nil {
		return c.Status(recordErrStatus(err)).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"record": rec.FilterRecord()},
	})
}

func HandleUpdateConsumptionRecord(c *fiber.Ctx) (err error) {

	instID, err := instIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": "You are not logged in",
		})
	}

	recID, err := c.ParamsInt("id")
	if err != nil || recID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid record id",
		})
	}

	input := ConsumptionRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	if errors := ValidateStruct(input); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	rec, err := UpdateConsumptionRecord(instID, uint(recID), input)
	if err != nil {
		return c.Status(recordErrStatus(err)).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	MetricRecordWrites.WithLabelValues("update").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"record": rec.FilterRecord()},
	})
}

func HandlePatchConsumptionRecord(c *fiber.Ctx) (err error) {

	instID, err := instIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": "You are not logged in",
		})
	}

	recID, err := c.ParamsInt("id")
	if err != nil || recID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid record id",
		})
	}

	patch := ConsumptionRecordPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	if errors := ValidateStruct(patch); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	rec, err := PatchConsumptionRecord(instID, uint(recID), patch)
	if err != nil {
		return c.Status(recordErrStatus(err)).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	MetricRecordWrites.WithLabelValues("update").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"record": rec.FilterRecord()},
	})
}

func HandleDeleteConsumptionRecord(c *fiber.Ctx) (err error) {

	instID, err := instIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": "You are not logged in",
		})
	}

	recID, err := c.ParamsInt("id")
	if err != nil || recID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid record id",
		})
	}

	if err = DeleteConsumptionRecord(instID, uint(recID)); err != nil {
		return c.Status(recordErrStatus(err)).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	MetricRecordWrites.WithLabelValues("delete").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}
