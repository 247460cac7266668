package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newTestConsumer(t *testing.T, messages ...kafka.Message) (*kafkaHandler, *fakeReader, *fakeWriter, *mocks.MockCheckoutCreator) {
	reader := &fakeReader{messages: messages}
	writer := &fakeWriter{}
	creator := mocks.NewMockCheckoutCreator(t)

	h := &kafkaHandler{
		dlq:      writer,
		reader:   reader,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
		creator:  creator,
	}
	return h, reader, writer, creator
}

func TestKafkaHandler_Consume(t *testing.T) {
	buyer := uuid.New()

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(c *mocks.MockCheckoutCreator)
		wantDLQ      bool
	}{
		{
			name:  "success",
			value: `{"buyer_id":"` + buyer.String() + `","user_notes":"ring twice"}`,
			mockBehavior: func(c *mocks.MockCheckoutCreator) {
				c.EXPECT().
					CreateFromCart(mock.Anything, entities.Actor{ID: buyer, Role: entities.RoleBuyer}, "ring twice").
					Return(entities.OrderView{ID: uuid.New(), Number: "ORD-1"}, nil).Once()
			},
		},
		{
			name:         "malformed json",
			value:        `{"buyer_id":`,
			mockBehavior: func(c *mocks.MockCheckoutCreator) {},
			wantDLQ:      true,
		},
		{
			name:         "invalid buyer",
			value:        `{"buyer_id":"nobody"}`,
			mockBehavior: func(c *mocks.MockCheckoutCreator) {},
			wantDLQ:      true,
		},
		{
			name:  "empty cart",
			value: `{"buyer_id":"` + buyer.String() + `"}`,
			mockBehavior: func(c *mocks.MockCheckoutCreator) {
				c.EXPECT().
					CreateFromCart(mock.Anything, mock.Anything, "").
					Return(entities.OrderView{}, entities.ErrValidation).Once()
			},
			wantDLQ: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := kafka.Message{Topic: "checkout", Key: []byte("k"), Value: []byte(tc.value), Offset: 7}
			h, reader, writer, creator := newTestConsumer(t, msg)
			tc.mockBehavior(creator)

			h.Consume(context.Background())

			require.Len(t, reader.committed, 1)
			if !tc.wantDLQ {
				assert.Empty(t, writer.written)
				return
			}
			require.Len(t, writer.written, 1)
			assert.Equal(t, "checkout-dlq", writer.written[0].Topic)
			assert.Equal(t, msg.Value, writer.written[0].Value)
			assert.Zero(t, writer.written[0].Offset)
		})
	}
}

func TestKafkaHandler_DLQFailureSkipsCommit(t *testing.T) {
	msg := kafka.Message{Topic: "checkout", Value: []byte(`not json`)}
	h, reader, writer, _ := newTestConsumer(t, msg)
	writer.err = errors.New("broker down")

	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}
