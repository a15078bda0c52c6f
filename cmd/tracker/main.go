// Command tracker follows a single order from the terminal: it re-fetches
// the order on a fixed interval and prints status transitions until the
// order is collected or cancelled.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env"

	"github.com/asavelyev/campus-canteen/internal/order"
	ordertypes "github.com/asavelyev/campus-canteen/internal/types/order"
)

type Config struct {
	Address  string        `env:"CANTEEN_ADDRESS" envDefault:"http://localhost:8080"`
	Token    string        `env:"CANTEEN_TOKEN"`
	Interval time.Duration `env:"TRACK_INTERVAL" envDefault:"10s"`
}

func main() {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal(err)
	}

	address := flag.String("a", cfg.Address, "Base URL of the canteen API")
	token := flag.String("t", cfg.Token, "Session token")
	orderID := flag.Int64("o", 0, "Order id to track")
	interval := flag.Duration("i", cfg.Interval, "Poll interval")
	flag.Parse()

	if *token == "" || *orderID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	client := &order.StatusClient{
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: *address,
		Token:   *token,
	}

	log.Printf("Tracking order %d every %s", *orderID, *interval)
	order.WatchLoop(ctx, client, *orderID, *interval, func(from, to ordertypes.Status) {
		fmt.Printf("order %d: %s -> %s\n", *orderID, from, to)
	})
}
