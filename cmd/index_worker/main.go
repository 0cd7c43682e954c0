package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oktarian/shopstock/config"
	"github.com/oktarian/shopstock/pkg/events"
	"github.com/oktarian/shopstock/pkg/helpers"
)

// Consumes product upsert events and mirrors them into the Elasticsearch
// product index that backs /api/products/search.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQProductQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if len(cfg.ESAddrs()) == 0 || cfg.ESProductsIndex == "" {
		log.Fatal("Elasticsearch not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQProductQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQProductQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("elasticsearch client: %v", err)
	}
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var evt events.ProductUpserted
			if err := json.Unmarshal(msg.Body, &evt); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if evt.ProductID == "" {
				log.Printf("event %s without product id, dropping", evt.EventID)
				_ = msg.Nack(false, false)
				continue
			}

			doc := map[string]any{
				"name":       evt.Name,
				"quantity":   evt.Quantity,
				"price":      evt.Price,
				"updated_at": evt.OccurredAt.Format(time.RFC3339Nano),
			}
			b, _ := json.Marshal(doc)
			req := esapi.IndexRequest{
				Index:      cfg.ESProductsIndex,
				DocumentID: evt.ProductID,
				Body:       strings.NewReader(string(b)),
				Refresh:    "false",
			}

			c, cancel := context.WithTimeout(ctx, 5*time.Second)
			res, err := req.Do(c, es)
			cancel()
			if err != nil {
				log.Printf("index failed: %v", err)
				_ = msg.Nack(false, true) // requeue, likely transient
				continue
			}
			if res.IsError() {
				log.Printf("index response error: %s", res.Status())
				_ = res.Body.Close()
				_ = msg.Nack(false, true)
				continue
			}
			_ = res.Body.Close()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("index worker listening on queue=%s", cfg.RabbitMQProductQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
