package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"stock-digest/internal/digest/model"
)

// Source 对话传输协作方的最小接口：返回按 id 升序的原始消息序列
type Source interface {
	FetchMessages(ctx context.Context, limit int) ([]model.RawMessage, error)
}

// Client 通过 HTTP 桥接服务拉取 Telegram 频道消息。
// 每轮运行显式传入一个实例，进程里不放全局单例。
type Client struct {
	Log        *zap.Logger
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Channel    string
}

// wireMessage 桥接服务的消息结构，date 是 unix 秒
type wireMessage struct {
	ID   int64  `json:"id"`
	Date int64  `json:"date"`
	Text string `json:"text"`
}

func (c *Client) FetchMessages(ctx context.Context, limit int) ([]model.RawMessage, error) {
	u, err := url.Parse(c.BaseURL + "/messages")
	if err != nil {
		return nil, fmt.Errorf("source: invalid baseURL: %w", err)
	}
	q := u.Query()
	q.Set("channel", c.Channel)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.Log.Warn("Failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var wire []wireMessage
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("source: invalid message payload: %w", err)
	}

	out := make([]model.RawMessage, 0, len(wire))
	for _, m := range wire {
		if m.Text == "" {
			continue
		}
		out = append(out, model.RawMessage{
			ID:        m.ID,
			Timestamp: time.Unix(m.Date, 0),
			Text:      m.Text,
		})
	}
	// 桥接端大多已排好，这里再保证一次 id 升序的约定
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	c.Log.Info("Fetched channel messages",
		zap.String("channel", c.Channel),
		zap.Int("count", len(out)),
	)
	return out, nil
}
