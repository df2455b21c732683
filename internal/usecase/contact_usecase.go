package usecase

import (
	"context"
	"errors"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/infrastructure/mail"

	"github.com/sirupsen/logrus"
)

var ErrMailDeliveryFailed = errors.New("failed to deliver contact message")

type ContactUsecase interface {
	SendContactMessage(ctx context.Context, req *dto.ContactRequest) error
}

type contactUsecase struct {
	log    *logrus.Logger
	mailer *mail.Mailer
}

func NewContactUsecase(log *logrus.Logger, mailer *mail.Mailer) ContactUsecase {
	return &contactUsecase{
		log:    log,
		mailer: mailer,
	}
}

func (u *contactUsecase) SendContactMessage(ctx context.Context, req *dto.ContactRequest) error {
	if err := u.mailer.SendContactMessage(req.Name, req.Email, req.Subject, req.Message); err != nil {
		u.log.Warnf("Failed to send contact email: %+v", err)
		return ErrMailDeliveryFailed
	}
	return nil
}
