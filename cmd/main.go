// Command main serves the TechCare Pro360 booking API: public booking, contact and
// service catalogue endpoints plus the JWT-guarded admin console.
package main

import (
	"github.com/techcare/pro360-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to start TechCare Pro360 API: %v", err)
	}

	cfg := app.Config
	logrus.WithFields(logrus.Fields{
		"paymentGateway": cfg.Razorpay.Enabled(),
		"sessionStore":   cfg.Redis.Enabled(),
		"eventBroker":    cfg.AMQP.URL != "",
	}).Info("TechCare Pro360 API initialized")

	app.Run()
}
