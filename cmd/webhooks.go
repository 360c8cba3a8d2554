package cmd

import (
	"context"
	"io"
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/alicebiometrics/onboarding-go/pkg/errtb"
	"github.com/alicebiometrics/onboarding-go/pkg/ostb"
	"github.com/alicebiometrics/onboarding-go/pkg/webhooks"
)

// WebhooksCmd registers a webhook pointed at a local receiver, pings it,
// and prints every delivery until interrupted.
func WebhooksCmd(env *Env, services *Services) {
	ctx := context.Background()
	client := services.Webhooks
	logger := services.Logger

	router := mux.NewRouter()
	router.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		logger.Info("webhook delivery",
			zap.String("event", r.Header.Get("Alice-Event-Name")),
			zap.ByteString("payload", payload))
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodPost)

	receiver := &http.Server{Addr: env.WebhookListenAddr, Handler: router}
	go func() {
		if err := receiver.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("webhook receiver failed", zap.Error(err))
		}
	}()
	defer func() {
		_ = receiver.Shutdown(context.Background())
	}()

	color.Cyan("get_available_events")
	events := errtb.Must(client.GetAvailableEvents(ctx))
	for _, event := range events {
		color.Green("event: %v", event["name"])
	}

	color.Cyan("create_webhook")
	webhookID := errtb.Must(client.CreateWebhook(ctx, webhooks.Webhook{
		Active:       true,
		PostURL:      env.WebhookPostURL,
		APIKey:       env.Config.APIKey,
		Secret:       "webhook-demo-secret",
		EventName:    "user_created",
		EventVersion: "1",
	}))
	color.Green("webhook_id: %s", webhookID)
	defer func() {
		errtb.Must0(client.DeleteWebhook(ctx, webhookID))
	}()

	color.Cyan("ping_webhook")
	errtb.Must0(client.PingWebhook(ctx, webhookID))

	result := errtb.Must(client.GetLastWebhookResult(ctx, webhookID))
	color.Green("last delivery: %v", result)

	color.Yellow("listening for deliveries on %s, ctrl-c to stop", env.WebhookListenAddr)
	ostb.WaitForStopSignal()
}
