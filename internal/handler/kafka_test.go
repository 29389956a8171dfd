package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/merch-fulfillment/internal/entities"
	mocks "github.com/SergeyBogomolovv/merch-fulfillment/internal/handler/mocks"
	"github.com/SergeyBogomolovv/merch-fulfillment/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
	err     error
	// failures - сколько первых вызовов вернут err; 0 - все
	failures int
	calls    int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.err != nil && (w.failures == 0 || w.calls <= w.failures) {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newTestKafkaHandler(reader *fakeReader, dlq *fakeWriter, payments PaymentEventHandler) *kafkaHandler {
	return &kafkaHandler{
		reader:   reader,
		dlq:      dlq,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
		payments: payments,
		dlqRetry: utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond, Multiplier: 2},
	}
}

func message(offset int64, value string) kafka.Message {
	return kafka.Message{Topic: "payments", Offset: offset, Value: []byte(value)}
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		mockBehavior func(payments *mocks.MockPaymentEventHandler)
		wantDLQ      bool
	}{
		{
			name:  "paid",
			value: `{"order_id":"1","status":"paid"}`,
			mockBehavior: func(payments *mocks.MockPaymentEventHandler) {
				payments.EXPECT().HandlePayment(mock.Anything, "1", entities.PaymentPaid).Return(nil).Once()
			},
		},
		{
			name:  "cancelled",
			value: `{"order_id":"1","status":"cancelled"}`,
			mockBehavior: func(payments *mocks.MockPaymentEventHandler) {
				payments.EXPECT().HandlePayment(mock.Anything, "1", entities.PaymentCancelled).Return(nil).Once()
			},
		},
		{
			name:         "broken json",
			value:        `{"order_id":`,
			mockBehavior: func(_ *mocks.MockPaymentEventHandler) {},
			wantDLQ:      true,
		},
		{
			name:         "unknown status",
			value:        `{"order_id":"1","status":"refunded"}`,
			mockBehavior: func(_ *mocks.MockPaymentEventHandler) {},
			wantDLQ:      true,
		},
		{
			name:         "missing order id",
			value:        `{"status":"paid"}`,
			mockBehavior: func(_ *mocks.MockPaymentEventHandler) {},
			wantDLQ:      true,
		},
		{
			name:  "handler fails",
			value: `{"order_id":"1","status":"paid"}`,
			mockBehavior: func(payments *mocks.MockPaymentEventHandler) {
				payments.EXPECT().HandlePayment(mock.Anything, "1", entities.PaymentPaid).
					Return(entities.ErrProviderSubmissionFailed).Once()
			},
			wantDLQ: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payments := mocks.NewMockPaymentEventHandler(t)
			tc.mockBehavior(payments)

			reader := &fakeReader{messages: []kafka.Message{message(7, tc.value)}}
			dlq := &fakeWriter{}

			newTestKafkaHandler(reader, dlq, payments).Consume(context.Background())

			assert.Len(t, reader.committed, 1)
			if tc.wantDLQ {
				if assert.Len(t, dlq.written, 1) {
					assert.Equal(t, "payments-dlq", dlq.written[0].Topic)
					assert.Equal(t, tc.value, string(dlq.written[0].Value))
				}
			} else {
				assert.Empty(t, dlq.written)
			}
		})
	}
}

func TestKafkaHandler_Consume_DLQRecovers(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		message(1, `not json`),
		message(2, `{"order_id":"2","status":"paid"}`),
	}}
	// три раунда повторов по две попытки проваливаются, потом брокер оживает
	dlq := &fakeWriter{err: errors.New("broker down"), failures: 6}

	payments := mocks.NewMockPaymentEventHandler(t)
	payments.EXPECT().HandlePayment(mock.Anything, "2", entities.PaymentPaid).Return(nil).Once()

	newTestKafkaHandler(reader, dlq, payments).Consume(context.Background())

	assert.Equal(t, 7, dlq.calls)
	if assert.Len(t, dlq.written, 1) {
		assert.Equal(t, int64(1), dlq.written[0].Offset)
	}
	// битое сообщение коммитится раньше следующего, смещение не перепрыгивает его
	if assert.Len(t, reader.committed, 2) {
		assert.Equal(t, int64(1), reader.committed[0].Offset)
		assert.Equal(t, int64(2), reader.committed[1].Offset)
	}
}

func TestKafkaHandler_Consume_DLQUnavailable(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		message(1, `not json`),
		message(2, `{"order_id":"2","status":"paid"}`),
	}}
	dlq := &fakeWriter{err: errors.New("broker down")}

	// второе сообщение не читается, пока первое не ушло в DLQ
	payments := mocks.NewMockPaymentEventHandler(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	newTestKafkaHandler(reader, dlq, payments).Consume(ctx)

	assert.Empty(t, reader.committed)
	assert.Len(t, reader.messages, 1)
	assert.Greater(t, dlq.calls, 2)
}
