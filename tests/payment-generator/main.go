package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Раз в interval публикует событие оплаты для случайного заказа из списка.
// Иногда повторяет событие или шлёт отмену, чтобы проверить идемпотентность.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers, comma separated")
	topic := flag.String("topic", "payments", "payments topic")
	orders := flag.String("orders", "", "order ids, comma separated")
	interval := flag.Duration("interval", 2*time.Second, "publish interval")
	flag.Parse()

	ids := strings.Split(*orders, ",")
	if *orders == "" {
		log.Fatal("no order ids, pass -orders")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			event := PaymentEvent{OrderID: ids[rand.Intn(len(ids))], Status: "paid"}
			if rand.Intn(10) == 0 {
				event.Status = "cancelled"
			}

			data, _ := json.Marshal(event)
			copies := 1
			if rand.Intn(5) == 0 {
				copies = 2
			}
			for range copies {
				if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data}); err != nil {
					log.Println("failed to publish:", err)
				}
			}
			log.Println("payment event published", event.OrderID, event.Status, "x", copies)
		case <-ctx.Done():
			return
		}
	}
}
