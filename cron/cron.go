package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/maisondupain/boulangerie-api/db"
	"github.com/maisondupain/boulangerie-api/models"
	"github.com/maisondupain/boulangerie-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for pickup reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for pickups in the next hour
	_, err := c.AddFunc("* * * * *", sendPickupReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for pickup reminders")
}

// sendPickupReminders checks for upcoming pickups and sends reminders
func sendPickupReminders() {
	var orders []models.Order
	now := utils.NowParis()
	// Look for orders picked up in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	// Query orders that are confirmed and within the time window
	err := db.DB.Preload("Customer").Preload("Items.Product").
		Where("status IN ? AND pickup_time BETWEEN ? AND ?",
			[]models.OrderStatus{models.StatusConfirmed, models.StatusReady}, startWindow, endWindow).
		Find(&orders).Error
	if err != nil {
		log.Printf("Error fetching orders for reminders: %v", err)
		return
	}

	fmt.Printf("Found %d orders for reminders\n", len(orders))

	for _, order := range orders {
		err := sendReminderEmail(&order)
		if err != nil {
			log.Printf("Failed to send reminder for order %d: %v", order.ID, err)
			continue
		}
		log.Printf("Sent reminder for order %s to %s", order.Reference, order.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(order *models.Order) error {
	subject := fmt.Sprintf("Rappel : retrait de votre commande %s", order.Reference)

	itemLines := ""
	for _, item := range order.Items {
		itemLines += fmt.Sprintf("<li>%d × %s</li>", item.Quantity, item.Product.Name)
	}

	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Votre commande vous attend dans une heure.</p>
		<p><strong>Détails :</strong></p>
		<ul>
			%s
			<li><strong>Retrait :</strong> %s</li>
			<li><strong>Total :</strong> %.2f €</li>
		</ul>
		<p>À tout à l'heure,</p>
		<p>Maison du Pain</p>
	`, order.Customer.Name, itemLines,
		order.PickupTime.Format("02/01/2006 15:04"),
		float64(order.Total)/100)

	return utils.SendEmail(order.Customer.Email, subject, body)
}
