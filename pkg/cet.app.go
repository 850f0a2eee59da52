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

	"github.com/gofiber/adaptor/v2" // go get github.com/gofiber/adaptor/v2
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

/* BUILD THE CET HTTP SURFACE; ROUTES PER core/urls.py OF THE ORIGINAL PLATFORM SPEC */
func NewApp() *fiber.App {

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		/* TODO: LIMIT ALLOWED ORIGINS FOR PRODUCTION DEPLOYMENT */
		AllowOrigins:     "http://localhost:8080, http://localhost:4173, http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Cache-Control",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(CountRequests)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	/* AUTH & PROFILE ROUTES */
	app.Route("/auth", func(router fiber.Router) {
		router.Post("/register", HandleRegisterInstitute)
		router.Post("/login", HandleLoginInstitute)
		router.Post("/refresh", HandleRefreshAccessToken)
		router.Get("/profile", CetAuth, HandleGetProfile)
	})

	/* EMISSION FACTOR ROUTES */
	app.Get("/factors", CetAuth, HandleGetEmissionFactorList)

	/* CONSUMPTION RECORD ROUTES */
	app.Route("/consumption", func(router fiber.Router) {
		router.Get("/", CetAuth, HandleGetConsumptionRecordList)
		router.Post("/", CetAuth, HandleCreateConsumptionRecord)
		router.Get("/:id", CetAuth, HandleGetConsumptionRecord)
		router.Put("/:id", CetAuth, HandleUpdateConsumptionRecord)
		router.Patch("/:id", CetAuth, HandlePatchConsumptionRecord)
		router.Delete("/:id", CetAuth, HandleDeleteConsumptionRecord)
	})

	/* DASHBOARD ROUTES */
	app.Route("/dashboard", func(router fiber.Router) {
		router.Get("/stats", CetAuth, HandleGetDashboardStats)
		router.Get("/comparison", CetAuth, HandleGetDepartmentComparison)
	})

	/* REPORT ROUTES */
	app.Route("/report", func(router fiber.Router) {
		router.Get("/pdf", CetAuth, HandleGenerateReportPDF)
		router.Get("/xlsx", CetAuth, HandleGenerateReportXLSX)
	})

	app.All("*", func(c *fiber.Ctx) error {
		path := c.Path()
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "fail",
			"message": fmt.Sprintf("Path: %v does not exists on this server", path),
		})
	})

	return app
}
