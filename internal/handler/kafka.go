package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PaymentEventHandler interface {
	HandlePayment(ctx context.Context, orderID string, status entities.PaymentStatus) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentEventHandler
	dlqRetry utils.RetryConfig
}

// kafka-go коммитит смещение партиции целиком, поэтому сообщение, не дошедшее до DLQ,
// нельзя обойти: чтение стоит, пока запись не пройдет или ctx не отменят.
var defaultDLQRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     10 * time.Second,
	Multiplier:   2,
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, payments PaymentEventHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		payments: payments,
		dlqRetry: defaultDLQRetry,
	}
}

// Consume читает события оплаты до отмены ctx.
// Сообщение, которое не удалось обработать, уходит в <topic>-dlq и коммитится.
// Пока DLQ недоступен, следующие сообщения не читаются.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		paymentEventsInProgress.Inc()
		start := time.Now()

		if err := h.handlePaymentEvent(ctx, m); err != nil {
			paymentEventsFailed.Inc()
			h.logger.Error("failed to handle payment event", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("stopping consumer, message left uncommitted", slog.Any("error", err), slog.Int64("offset", m.Offset))
				paymentEventsInProgress.Dec()
				return
			}
			paymentEventsDLQ.Inc()
		}

		paymentEventDuration.Observe(time.Since(start).Seconds())
		paymentEventsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	if err := h.payments.HandlePayment(ctx, event.OrderID, entities.PaymentStatus(event.Status)); err != nil {
		return err
	}
	paymentEventsProcessed.WithLabelValues(event.Status).Inc()
	return nil
}

// writeToDLQ повторяет запись до успеха; ошибку возвращает только после отмены ctx.
func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	for {
		err := utils.Retry(ctx, h.dlqRetry, func() error { return h.WriteToDLQ(ctx, m) })
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		dlqWriteStalls.Inc()
		h.logger.Error("failed to write message to DLQ, partition is blocked", slog.Any("error", err), slog.Int64("offset", m.Offset))
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
