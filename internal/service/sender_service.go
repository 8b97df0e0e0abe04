package service

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"braseria/internal/db"
)

type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendBookingEmail emails a booking summary when the customer left an
// address. Fire-and-forget: failures are logged, never surfaced.
func (s *SenderService) SendBookingEmail(res *db.Reservation, status string) {
	if res.Email == "" {
		return
	}

	loc, errLoc := time.LoadLocation("Europe/Madrid")
	if errLoc != nil {
		loc = time.FixedZone("CET", 1*60*60)
	}

	subject := fmt.Sprintf("Tu reserva en La Brasería está %s - Código: %s", status, res.Code)
	body := fmt.Sprintf(
		"Hola %s,\n\nTu reserva en La Brasería está %s.\n\n"+
			"Detalles de la reserva:\n"+
			"Código: %s\n"+
			"Fecha: %s\n"+
			"Hora: %s - %s\n"+
			"Personas: %d\n\n"+
			"Gracias por elegir La Brasería.\n\n"+
			"La Brasería %d. Todos los derechos reservados.",
		res.CustomerName, status, res.Code,
		res.Date.Format("02/01/2006"),
		MinutesToClock(res.StartMin), MinutesToClock(res.EndMinutes()),
		res.PartySize,
		time.Now().In(loc).Year(),
	)

	go func(toEmail, toName, subject, body string) {
		if err := sendWithSendGrid(toEmail, toName, subject, body); err != nil {
			log.Printf("ALERTA (asíncrono): Falló envío de correo para reserva %s: %v", res.Code, err)
		}
	}(res.Email, res.CustomerName, subject, body)
}

func sendWithSendGrid(toEmailAddress, toName, subject, plainTextContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY no está configurada")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL no está configurada")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "La Brasería"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("falló el envío del correo a través de SendGrid: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Correo enviado a %s (Asunto: %s). Estado: %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid devolvió un estado no exitoso %d: %s", response.StatusCode, response.Body)
}
