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

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type checkout struct {
	BuyerID   string `json:"buyer_id"`
	UserNotes string `json:"user_notes,omitempty"`
}

var notes = []string{"", "", "leave at the door", "call before pickup", "gift wrap please"}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "checkout", "checkout topic")
	buyers := flag.String("buyers", "", "comma separated buyer ids, random when empty")
	interval := flag.Duration("interval", 2*time.Second, "delay between checkouts")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	var pool []string
	if *buyers != "" {
		pool = strings.Split(*buyers, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			msg := checkout{BuyerID: uuid.NewString(), UserNotes: notes[rand.Intn(len(notes))]}
			if len(pool) > 0 {
				msg.BuyerID = pool[rand.Intn(len(pool))]
			}

			data, _ := json.Marshal(msg)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.BuyerID), Value: data}); err != nil {
				log.Println("failed to write checkout:", err)
				continue
			}
			log.Println("checkout requested for buyer", msg.BuyerID)
		case <-ctx.Done():
			return
		}
	}
}
