package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/charvi/config"
	grpcserver "github.com/shashiranjanraj/charvi/pkg/grpc"
	"github.com/shashiranjanraj/charvi/pkg/logger"
)

// Heartbeat logs a liveness line every run and verifies both local
// listeners: the hello query against the GraphQL endpoint and a health
// check against the gRPC server. Probe failures are logged, never fatal.
func Heartbeat() {
	stamp := time.Now().Format("02/01/2006-15:04:05")
	logger.Info(stamp + " CRM is alive")

	if msg, err := probeHello(); err != nil {
		logger.Warn("heartbeat: graphql probe failed", "error", err)
	} else {
		logger.Info("heartbeat: graphql responsive", "hello", msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := grpcserver.CheckHealth(ctx, "localhost:"+config.GRPCPort()); err != nil {
		logger.Warn("heartbeat: grpc probe failed", "error", err)
	} else {
		logger.Info("heartbeat: grpc healthy")
	}
}

func probeHello() (string, error) {
	url := fmt.Sprintf("http://localhost:%s/graphql?query={hello}", config.AppPort())

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Data struct {
			Hello string `json:"hello"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Data.Hello, nil
}
