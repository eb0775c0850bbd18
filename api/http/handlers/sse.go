package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// streamSSE writes each snapshot from the subscription as one SSE data frame.
// The subscription is cancelled as soon as a write or flush fails, which is
// how a closed client connection shows up here.
func streamSSE[T any](c *fiber.Ctx, subscribe func(ctx context.Context) (<-chan T, error)) error {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for snapshot := range ch {
			payload, err := json.Marshal(snapshot)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
