package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendReservationRequestNotification(ctx context.Context, ownerEmail, renterName, carName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested to rent your car %s.\n\nPlease review the request in your owner dashboard.\n\nBest regards,\nThe CarRent Team", renterName, carName)
	return s.send(ownerEmail, fmt.Sprintf("New booking request for %s", carName), body)
}

func (s *emailService) SendReservationApprovalNotification(ctx context.Context, renterEmail, carName, ownerName string) error {
	body := fmt.Sprintf("Hello,\n\nYour booking request for %s was accepted by %s.\n\nBest regards,\nThe CarRent Team", carName, ownerName)
	return s.send(renterEmail, fmt.Sprintf("Booking confirmed - %s", carName), body)
}

func (s *emailService) SendReservationRejectionNotification(ctx context.Context, renterEmail, carName, ownerName string) error {
	body := fmt.Sprintf("Hello,\n\nYour booking request for %s was declined by %s.\n\nBest regards,\nThe CarRent Team", carName, ownerName)
	return s.send(renterEmail, fmt.Sprintf("Booking declined - %s", carName), body)
}

func (s *emailService) SendReservationCancellationNotification(ctx context.Context, email, actorName, carName string) error {
	body := fmt.Sprintf("Hello,\n\n%s cancelled the booking of %s.\n\nBest regards,\nThe CarRent Team", actorName, carName)
	return s.send(email, fmt.Sprintf("Booking cancelled - %s", carName), body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, renterEmail, carName, startDate string) error {
	body := fmt.Sprintf("Hello,\n\nA reminder that your rental of %s starts on %s.\n\nBest regards,\nThe CarRent Team", carName, startDate)
	return s.send(renterEmail, fmt.Sprintf("Pickup reminder - %s", carName), body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, renterEmail, carName, endDate string) error {
	body := fmt.Sprintf("Hello,\n\nA reminder that your rental of %s ends on %s.\n\nBest regards,\nThe CarRent Team", carName, endDate)
	return s.send(renterEmail, fmt.Sprintf("Return reminder - %s", carName), body)
}
