package jobs

import (
	"fmt"
	"log"
	"time"

	config "github.com/akshat2912/vidyalaya/configs"
	"github.com/akshat2912/vidyalaya/database"
	"github.com/akshat2912/vidyalaya/models"
	"github.com/akshat2912/vidyalaya/services"
)

// SendPendingReviewReminders mails the admin a digest of institutions that
// have been awaiting a decision for more than 48 hours.
func SendPendingReviewReminders(mailer services.Mailer) {
	log.Println("Running job: SendPendingReviewReminders...")

	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	cutoff := time.Now().Add(-48 * time.Hour)

	var stale []models.Institution
	err := database.DB.
		Where("approval_status = ? AND created_at < ?", models.ApprovalStatusPending, cutoff).
		Order("created_at asc").
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for stale pending registrations: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	body := "<h1>Registrations Awaiting Review</h1><ul>"
	for _, inst := range stale {
		body += fmt.Sprintf("<li><b>%s</b> (%s) — registered %s</li>",
			inst.RegisteredName, inst.RegistrationNumber, inst.CreatedAt.Format("02 Jan 2006"))
	}
	body += "</ul>"

	subject := fmt.Sprintf("%d institution(s) pending review for over 48 hours", len(stale))
	mailer.Send("Admin", adminEmail, subject, body)
}
