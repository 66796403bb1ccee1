package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/journalup/journal-up/internal/ai"
)

// StartEntryConsumer connects to RabbitMQ, declares the entry.created
// queue (durable), and starts consuming messages. Each entry is scored by
// the analyzer and the result is appended to logs/analysis.log in a
// single-line, human-friendly format. The function runs a reconnect loop;
// it keeps running and logs any processing errors while rejecting the
// offending message so the server continues operating.
func StartEntryConsumer(analyzer ai.Analyzer) error {
	url := brokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("entry-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, analyzer); err != nil {
			log.Printf("entry-consumer: consume loop ended: %v; reconnecting", err)
			// Sleep briefly before reconnect
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection, analyzer ai.Analyzer) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("entry-consumer: set QoS failed: %v", err)
	}

	_, err = ch.QueueDeclare(entryQueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(entryQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, analyzer); err != nil {
			log.Printf("entry-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, analyzer ai.Analyzer) error {
	var ev EntryCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	analysis := analyzer.AnalyzeEntry(ev.Content)

	// Ensure logs directory exists
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "analysis.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Entry analyzed | entry_id=%s | journal_id=%s | user_id=%s | sentiment=%.2f (%s) | indicators=%v\n",
		ev.CreatedAt, ev.EntryID, ev.JournalID, ev.UserID, analysis.Sentiment, analysis.SentimentLabel, analysis.GrowthIndicators)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
