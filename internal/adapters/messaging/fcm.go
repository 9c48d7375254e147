package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

var _ services.PushGateway = (*FCMGateway)(nil)

// FCMGateway delivers pushes through the Firebase Cloud Messaging v1
// REST API with a service-account credential.
type FCMGateway struct {
	svc    *fcm.Service
	parent string
}

func NewFCMGateway(ctx context.Context, projectID, credentialsFile string) (*FCMGateway, error) {
	if projectID == "" {
		return nil, errors.New("fcm project id is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := fcm.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init fcm service: %w", err)
	}

	return &FCMGateway{
		svc:    svc,
		parent: "projects/" + projectID,
	}, nil
}

// Send delivers the notification token by token; the v1 API has no
// multicast call. Tokens FCM rejects as gone are reported back for
// pruning.
func (g *FCMGateway) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (*services.PushReceipt, error) {
	receipt := &services.PushReceipt{}

	for _, token := range tokens {
		req := &fcm.SendMessageRequest{
			Message: &fcm.Message{
				Token: token,
				Notification: &fcm.Notification{
					Title: title,
					Body:  body,
				},
				Data: data,
			},
		}

		_, err := g.svc.Projects.Messages.Send(g.parent, req).Context(ctx).Do()
		if err == nil {
			receipt.Success++
			continue
		}

		receipt.Failure++
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && (gErr.Code == http.StatusNotFound || gErr.Code == http.StatusBadRequest) {
			// UNREGISTERED or INVALID_ARGUMENT: token is gone.
			receipt.Unregistered = append(receipt.Unregistered, token)
			continue
		}
		log.Printf("FCM send failed: %v", err)
	}

	return receipt, nil
}
