package handlers

import (
	"github.com/gamescriptai/payment-webhook-service/pkg/hmacvalidator"
	service "github.com/gamescriptai/payment-webhook-service/services"
)

type Handlers struct {
	services  *service.Services
	validator *hmacvalidator.Validator
}

func NewHandlers(services *service.Services, validator *hmacvalidator.Validator) *Handlers {
	return &Handlers{
		services:  services,
		validator: validator,
	}
}
