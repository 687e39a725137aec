package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/handler"

	"github.com/segmentio/kafka-go"
)

var statuses = []string{"", "Pending", "Processing"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder(userID string, products []string) handler.CreateOrderRequest {
	lines := make([]handler.OrderLine, 1+rand.Intn(len(products)))
	for i := range lines {
		lines[i] = handler.OrderLine{
			Product:  products[rand.Intn(len(products))],
			Quantity: 1 + rand.Intn(5),
		}
	}

	return handler.CreateOrderRequest{
		OrderItems:       lines,
		ShippingAddress1: fmt.Sprintf("Street %d", rand.Intn(100)),
		ShippingAddress2: fmt.Sprintf("Apt %d", 1+rand.Intn(200)),
		City:             "City" + randomString(4),
		Zip:              fmt.Sprintf("%06d", rand.Intn(999999)),
		Country:          "Country" + randomString(3),
		Phone:            fmt.Sprintf("+%d", rand.Intn(9999999999)),
		Status:           statuses[rand.Intn(len(statuses))],
		User:             userID,
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "orders", "order requests topic")
	user := flag.String("user", "", "id of the ordering user")
	products := flag.String("products", "", "comma separated product ids")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	flag.Parse()

	if *user == "" || *products == "" {
		log.Fatal("both -user and -products are required")
	}
	productIDs := strings.Split(*products, ",")

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
			order := generateRandomOrder(*user, productIDs)
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write order request:", err)
				continue
			}
			log.Println("order request sent, lines:", len(order.OrderItems))
		case <-ctx.Done():
			return
		}
	}
}
