package notification

import (
	"context"
	"fmt"

	"strikersyard/config"
	"strikersyard/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer is the production Service implementation, delivering over SMTP.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	ownerEmail string
	logger     *zap.Logger
}

// NewSMTPMailer constructs a mailer from the app configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:       cfg.FromEmail,
		ownerEmail: cfg.OwnerEmail,
		logger:     utils.GetLogger(),
	}
}

// SendBookingConfirmed mails the customer and the ground owner.
func (m *SMTPMailer) SendBookingConfirmed(ctx context.Context, conf BookingConfirmation) error {
	userBody := fmt.Sprintf(
		"Your booking is confirmed.\n\n"+
			"Service: %s\nDate: %s\nTime: %s\nDuration: %d hour(s)\n"+
			"Amount Paid: ₹%s\nBooking ID: %s\n",
		conf.ServiceName, conf.Date, conf.TimeRange, conf.DurationHours,
		conf.AmountPaid, conf.BookingID,
	)
	if err := m.send(conf.UserEmail, "Booking Confirmed", userBody); err != nil {
		return fmt.Errorf("failed to send user confirmation: %w", err)
	}

	ownerBody := fmt.Sprintf(
		"A new booking has been confirmed.\n\n"+
			"Customer: %s\nService: %s\nDate: %s\nTime: %s\nDuration: %d hour(s)\n"+
			"Status: %s\nBooking ID: %s\n",
		conf.UserName, conf.ServiceName, conf.Date, conf.TimeRange,
		conf.DurationHours, conf.Status, conf.BookingID,
	)
	if err := m.send(m.ownerEmail, "New Turf Booking", ownerBody); err != nil {
		return fmt.Errorf("failed to send owner notification: %w", err)
	}
	return nil
}

// SendOTP delivers a login code. Outside production the code is only logged,
// since there is no SMS integration yet.
func (m *SMTPMailer) SendOTP(ctx context.Context, phone, code string) error {
	if !config.IsProduction() {
		m.logger.Sugar().Infof("OTP for %s is %s", phone, code)
		return nil
	}
	body := fmt.Sprintf("Your OTP code is %s. It expires in 5 minutes.", code)
	// TODO: route through an SMS provider once one is picked; the gateway
	// address below only works for carriers with an email-to-SMS bridge.
	if err := m.send(phone, "Your OTP Code", body); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
