package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"medremind/internal/core/domain/notification"
	"net/http"
	"net/url"
	"time"
)

type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

// Gateway sends push messages through the FCM legacy HTTP endpoint,
// authenticated with a server key.
type Gateway struct {
	httpClient http.Client
	endpoint   url.URL
	serverKey  string
}

func New(endpoint url.URL, serverKey string, timeout time.Duration) *Gateway {
	return &Gateway{
		httpClient: http.Client{Timeout: timeout},
		endpoint:   endpoint,
		serverKey:  serverKey,
	}
}

func (g *Gateway) SendPush(
	ctx context.Context,
	message notification.Message,
) (receipt notification.Receipt, err error) {
	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	err = encoder.Encode(fcmMessage{
		To:           message.Token,
		Notification: fcmNotification{Title: message.Title, Body: message.Body},
		Data:         message.Data,
	})
	if err != nil {
		return receipt, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint.String(), &body)
	if err != nil {
		return receipt, err
	}
	request.Header.Add("content-type", "application/json")
	request.Header.Add("authorization", "key="+g.serverKey)

	resp, err := g.httpClient.Do(request)
	if err != nil {
		return receipt, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return receipt, err
		}
		return receipt, &notification.GatewayError{
			Code:    fmt.Sprintf("HTTP-%d", resp.StatusCode),
			Message: string(respBody),
		}
	}

	fcmResp := fcmResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&fcmResp); err != nil {
		return receipt, err
	}
	if fcmResp.Failure > 0 && len(fcmResp.Results) > 0 {
		return receipt, &notification.GatewayError{
			Code:    fcmResp.Results[0].Error,
			Message: "FCM rejected the message",
		}
	}
	if len(fcmResp.Results) > 0 {
		receipt = notification.Receipt(fcmResp.Results[0].MessageID)
	}
	return receipt, nil
}
