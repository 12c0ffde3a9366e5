// Package client reads the public blog feed over HTTP and renders it the
// way the browser client does.
package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/dto"
)

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: 10 * time.Second}
}

func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// ListBlogs fetches GET /api/blogs.
func (c *Client) ListBlogs() ([]dto.BlogView, error) {
	a := fiber.Get(c.baseURL + "/api/blogs")
	a.Timeout(c.timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("fetch blogs: %w", errs[0])
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("fetch blogs: unexpected status %d", code)
	}

	var blogs []dto.BlogView
	if err := json.Unmarshal(body, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}
