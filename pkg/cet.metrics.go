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
	"github.com/gofiber/fiber/v2"

	"github.com/prometheus/client_golang/prometheus"          // go get github.com/prometheus/client_golang
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MetricHTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cet_http_requests_total",
	Help: "HTTP requests received, by method.",
}, []string{"method"})

var MetricRecordWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cet_consumption_record_writes_total",
	Help: "Consumption record write operations, by op.",
}, []string{"op"})

var MetricReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cet_reports_generated_total",
	Help: "Reports generated, by format.",
}, []string{"format"})

func CountRequests(c *fiber.Ctx) error {
	MetricHTTPRequests.WithLabelValues(c.Method()).Inc()
	return c.Next()
}
