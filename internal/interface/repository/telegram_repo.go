package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wizzbot/internal/domain/repository"
	"wizzbot/pkg/logger"
)

// TelegramRepository delivers messages through the Telegram Bot API
type TelegramRepository struct {
	logger  logger.Logger
	baseURL string
	token   string
	client  *http.Client
}

// NewTelegramRepository creates a new Telegram notifier
func NewTelegramRepository(baseURL, token string, logger logger.Logger) repository.Notifier {
	return &TelegramRepository{
		logger:  logger,
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage posts a sendMessage call for the given chat
func (r *TelegramRepository) SendMessage(ctx context.Context, chatID int64, text string) error {
	body := sendMessageRequest{
		ChatID: chatID,
		Text:   text,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", r.baseURL, r.token)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
		ErrorCode   int    `json:"error_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !response.OK {
		return fmt.Errorf("telegram API returned status %d: %s (code %d)",
			resp.StatusCode, response.Description, response.ErrorCode)
	}

	r.logger.Info("Message delivered", "chatId", chatID)
	return nil
}
