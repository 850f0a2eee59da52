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
	"fmt"

	"github.com/gofiber/fiber/v2" // go get github.com/gofiber/fiber/v2
)

/* CREATE A NEW INSTITUTE ACCOUNT */
func HandleRegisterInstitute(c *fiber.Ctx) (err error) {

	/* PARSE AND VALIDATE REQUEST DATA */
	rinp := RegisterInstituteInput{}
	if err := c.BodyParser(&rinp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}
	if errors := ValidateStruct(rinp); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	inst, err := RegisterInstitute(rinp)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"institute": inst.FilterInstituteRecord()},
	})
}

/* AUTHENTICATE INSTITUTE CREDENTIALS AND RETURN JWTs */
func HandleLoginInstitute(c *fiber.Ctx) (err error) {

	linp := LoginInstituteInput{}
	if err := c.BodyParser(&linp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": fmt.Sprintf("Malformed request body: %v", err.Error()),
		})
	}
	if errors := ValidateStruct(linp); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	ires, acc, ref, err := LoginInstitute(linp)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"institute": ires,
		"acc":       acc,
		"ref":       ref,
	})
}

/* VERIFY REFRESH TOKEN AND RETURN NEW ACCESS TOKEN */
func HandleRefreshAccessToken(c *fiber.Ctx) (err error) {

	tinp := RefreshTokenInput{}
	if err := c.BodyParser(&tinp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": fmt.Sprintf("Malformed request body: %v", err.Error()),
		})
	}
	if errors := ValidateStruct(tinp); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	acc, err := RefreshAccessToken(tinp.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"acc":    acc,
	})
}

/* RETURN THE CALLER'S OWN PROFILE */
func HandleGetProfile(c *fiber.Ctx) (err error) {

	inst, err := GetInstituteByID(fmt.Sprintf("%v", c.Locals("sub")))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"institute": inst.FilterInstituteRecord()},
	})
}
