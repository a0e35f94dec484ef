package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/freewrite/pkg/app"
)

// Create saves a new entry from Content, or from In when Content is empty.
type Create struct {
	Service *app.Service
	Title   string
	Content string
	In      io.Reader
	Out     io.Writer
}

func (c *Create) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not create, no persistence")
	}
	content := c.Content
	if content == "" && c.In != nil {
		b, err := io.ReadAll(c.In)
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
		content = string(b)
	}
	if strings.TrimSpace(content) == "" {
		return errors.New("nothing to save, content is empty")
	}

	e, err := c.Service.Create(ctx, c.Title, content)
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	_, _ = fmt.Fprintf(c.out(), "created %s ", color.New(color.Bold).Sprint(e.Title))
	_, _ = f.Fprintln(c.out(), e.ID)
	return nil
}

func (c *Create) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return color.Output
}
