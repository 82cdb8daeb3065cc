package main

import (
	"fmt"
	"strings"
	"time"

	"transport-app/config"
	"transport-app/database"
	"transport-app/models"
	"transport-app/repositories"
	"transport-app/services"

	"gopkg.in/gomail.v2"
)

// Payment reminder processor. Runs next to the API server, flags overdue
// builties on an interval, and mails each client a summary of what they owe.
func main() {
	config.LoadConfig()
	log := config.InitLogger()

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	builtyRepo := repositories.NewBuiltyRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	clientService := services.NewClientService(clientRepo, builtyRepo)
	builtyService := services.NewBuiltyService(builtyRepo, repositories.NewTripRepository(db), clientService)
	maintenanceService := services.NewMaintenanceService(repositories.NewMaintenanceRepository(db), repositories.NewTruckRepository(db))

	interval := time.Duration(config.ReminderInterval) * time.Minute
	log.Infof("Payment reminder processor running every %s", interval)

	for {
		runSweep(builtyService, maintenanceService, builtyRepo)
		time.Sleep(interval)
	}
}

func runSweep(builtyService *services.BuiltyService, maintenanceService *services.MaintenanceService, builtyRepo *repositories.BuiltyRepository) {
	log := config.GetLogger()

	flipped, err := builtyService.MarkOverdueSweep(time.Now())
	if err != nil {
		log.Errorf("Overdue sweep failed: %v", err)
		return
	}
	if flipped > 0 {
		log.Infof("Flagged %d builties overdue", flipped)
	}

	lapsed, err := maintenanceService.OverdueSweep(time.Now())
	if err != nil {
		log.Errorf("Maintenance sweep failed: %v", err)
	} else if lapsed > 0 {
		log.Infof("Flagged %d maintenance jobs overdue", lapsed)
	}

	builties, err := builtyRepo.UnpaidWithClients()
	if err != nil {
		log.Errorf("Failed to load unpaid builties: %v", err)
		return
	}

	for clientID, group := range groupByClient(builties) {
		client := group[0].Client
		if client.Email == "" {
			log.Warnf("Client %s has no email, skipping reminder", client.ClientName)
			continue
		}
		if err := sendReminder(&client, group); err != nil {
			log.Errorf("Failed to mail client %d: %v", clientID, err)
			continue
		}
		log.Infof("Reminder sent to %s for %d builties", client.Email, len(group))
	}
}

func groupByClient(builties []models.Builty) map[uint][]models.Builty {
	grouped := make(map[uint][]models.Builty)
	for _, b := range builties {
		grouped[b.ClientID] = append(grouped[b.ClientID], b)
	}
	return grouped
}

func sendReminder(client *models.Client, builties []models.Builty) error {
	var body strings.Builder
	var total float64

	body.WriteString(fmt.Sprintf("<p>Dear %s,</p>", client.ClientName))
	body.WriteString("<p>The following builties are pending payment:</p>")
	body.WriteString("<table border='1' cellpadding='4'><tr><th>Builty No</th><th>Date</th><th>Due Date</th><th>Amount</th><th>Balance</th></tr>")
	for _, b := range builties {
		body.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%.2f</td><td>%.2f</td></tr>",
			b.BuiltyNo, b.BuiltyDate.Format("02-01-2006"), b.DueDate.Format("02-01-2006"), b.GrandTotal, b.Balance()))
		total += b.Balance()
	}
	body.WriteString("</table>")
	body.WriteString(fmt.Sprintf("<p>Total outstanding: <b>%.2f</b></p>", total))
	body.WriteString(fmt.Sprintf("<p>Regards,<br>%s</p>", config.CompanyName))

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", client.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Payment reminder: %d builties pending", len(builties)))
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
