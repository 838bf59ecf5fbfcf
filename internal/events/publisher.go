package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher streams committed wallet transactions to Kafka for downstream
// consumers (reporting, reconciliation). Delivery is best-effort; a lost
// event never affects the ledger.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(addr, topic string) *Publisher {
	if addr == "" {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addr),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
		},
	}
}

type walletTransactionEvent struct {
	EventID      string         `json:"event_id"`
	UserID       int            `json:"user_id"`
	WalletID     int            `json:"wallet_id"`
	Type         string         `json:"type"`
	Direction    string         `json:"direction"`
	Amount       string         `json:"amount"`
	BalanceAfter string         `json:"balance_after"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

func (p *Publisher) PublishWalletTransaction(ctx context.Context, userID int, txn *domain.WalletTransaction) error {
	event := walletTransactionEvent{
		EventID:      uuid.NewString(),
		UserID:       userID,
		WalletID:     txn.WalletID,
		Type:         txn.Type,
		Direction:    txn.Direction,
		Amount:       txn.Amount.String(),
		BalanceAfter: txn.BalanceAfter.String(),
		Metadata:     txn.Metadata,
		OccurredAt:   txn.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EventID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
