package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/microservices-manager/admin-console/internal/adapters/rest"
	"github.com/microservices-manager/admin-console/internal/application"
	"github.com/microservices-manager/admin-console/internal/config"
	"github.com/microservices-manager/admin-console/pkg/auth"
	"github.com/microservices-manager/admin-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.Logger.Level)
	defer logg.Sync()

	if cfg.API.Token != "" {
		info, err := auth.Inspect(cfg.API.Token)
		if err != nil {
			logg.Warn("could not inspect API token", zap.Error(err))
		} else if info.Expired(time.Now()) {
			logg.Warn("API token is expired",
				zap.String("subject", info.Subject),
				zap.Time("expires_at", info.ExpiresAt))
		}
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.Token, logg)

	in := bufio.NewScanner(os.Stdin)
	confirmer := &terminalConfirmer{in: in, out: os.Stdout}

	users := application.NewUserCollection(rest.NewUserClient(client), confirmer, logg)
	orders := application.NewOrderCollection(rest.NewOrderClient(client), confirmer, logg)

	c := &console{
		in:        in,
		out:       os.Stdout,
		log:       logg,
		users:     users,
		orders:    orders,
		userForm:  application.NewUserForm(users),
		orderForm: application.NewOrderForm(orders),
	}

	fmt.Println("Microservices Manager console. Type 'help' for commands.")
	c.run(context.Background())
}

// terminalConfirmer gates destructive actions behind a blocking y/N prompt.
type terminalConfirmer struct {
	in  *bufio.Scanner
	out *os.File
}

func (t *terminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)
	if !t.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(t.in.Text()))
	return answer == "y" || answer == "yes"
}
