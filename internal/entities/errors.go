package entities

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidOrder    = errors.New("invalid order")

	ErrInvalidMockupRequest = errors.New("invalid mockup request")

	ErrAlreadyInProgress      = errors.New("order is already fulfilled or in progress")
	ErrNoEligibleItems        = errors.New("no print-on-demand items in order")
	ErrInvalidShippingAddress = errors.New("invalid shipping address")
	ErrOrderCancelled         = errors.New("order payment is cancelled")
	ErrOrderNotPending        = errors.New("order is not awaiting confirmation")
	ErrNotSubmitted           = errors.New("order has not been submitted to provider")

	// Отправка не состоялась, состояние заказа не менялось - можно повторить.
	ErrProviderSubmissionFailed = errors.New("provider submission failed")

	// Заказ создан у провайдера и сохранён в pending, но не подтверждён.
	ErrConfirmationFailed = errors.New("provider confirmation failed")

	// Заказ создан у провайдера, но записать это локально не удалось. Повторять отправку нельзя.
	ErrStateWriteFailed = errors.New("failed to record provider order")
)
