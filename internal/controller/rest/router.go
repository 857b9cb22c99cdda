// Package rest wires the HTTP routes onto a gin engine.
package rest

import (
	"payments-api/internal/controller/rest/handlers"
	"payments-api/pkg/health"
	"payments-api/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	payment handlers.PaymentHandler
	checks  *health.Registry
}

func NewRouter(payment handlers.PaymentHandler, checks *health.Registry) Router {
	return Router{payment: payment, checks: checks}
}

func (r Router) SetUp(engine *gin.Engine) {
	api := engine.Group("/api/payments")
	{
		api.PUT("/confirm", r.payment.Confirm)
		api.PUT("/save", r.payment.Save)
		api.GET("/seller/:sellerId", r.payment.GetBySeller)
		api.GET("/billingCode/:billingCode", r.payment.GetByBillingCode)
		api.GET("/validate/:sellerId/:billingCode", r.payment.Validate)
	}

	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.checks, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}
