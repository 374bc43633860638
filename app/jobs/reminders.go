package jobs

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/pkg/logger"
	"github.com/shashiranjanraj/charvi/pkg/mail"
	"github.com/shashiranjanraj/charvi/pkg/metrics"
	"github.com/shashiranjanraj/charvi/pkg/queue"
)

// ReminderMail is a queued job that emails a follow-up for a recent order.
type ReminderMail struct {
	OrderID       uint    `json:"order_id"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	TotalAmount   float64 `json:"total_amount"`
}

func (j ReminderMail) Handle() error {
	body := fmt.Sprintf(
		"Hi %s,<br><br>just a reminder about your recent order #%d (total $%.2f). "+
			"Reply to this mail if anything looks off.",
		j.CustomerName, j.OrderID, j.TotalAmount,
	)
	return mail.To(j.CustomerEmail).
		Subject("About your recent order").
		Body(body).
		Send()
}

func init() {
	queue.Register("jobs.ReminderMail", func() queue.Job { return &ReminderMail{} })
}

// OrderReminders finds orders placed in the last seven days and queues a
// reminder mail for each.
func OrderReminders(orders *services.OrderService) {
	recent, err := orders.Since(time.Now().AddDate(0, 0, -7))
	if err != nil {
		logger.Error("reminders: query failed", "error", err)
		return
	}

	enqueued := 0
	for _, o := range recent {
		job := ReminderMail{
			OrderID:       o.ID,
			CustomerEmail: o.Customer.Email,
			CustomerName:  o.Customer.Name,
			TotalAmount:   o.TotalAmount,
		}
		if err := queue.Dispatch(job); err != nil {
			logger.Error("reminders: dispatch failed", "order_id", o.ID, "error", err)
			continue
		}
		logger.Info("reminders: queued", "order_id", o.ID, "email", o.Customer.Email)
		enqueued++
	}

	metrics.AddRemindersEnqueued(enqueued)
	logger.Info("Order reminders processed!", "count", enqueued)
}
