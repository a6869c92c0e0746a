package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// FeedCommander sends process feed commands.
type FeedCommander struct {
	sender Sender
}

// NewFeedCommander returns new FeedCommander using provided sender for sending messages.
func NewFeedCommander(sender Sender) FeedCommander {
	return FeedCommander{
		sender: sender,
	}
}

// SendProcessFeedCommand sends process feed command for feed source.
func (c FeedCommander) SendProcessFeedCommand(ctx context.Context, feedSourceID int64) error {
	return send(ctx, c.sender, ProcessFeedCommand{FeedSourceID: feedSourceID})
}

// RetryProcessFeedCommand sends failed process feed command again, with increased attempt.
func (c FeedCommander) RetryProcessFeedCommand(ctx context.Context, cmd ProcessFeedCommand) error {
	cmd.Attempt++
	return send(ctx, c.sender, cmd)
}

// ImagesCommander sends sync images commands.
type ImagesCommander struct {
	sender Sender
}

// NewImagesCommander returns new ImagesCommander using provided sender for sending messages.
func NewImagesCommander(sender Sender) ImagesCommander {
	return ImagesCommander{
		sender: sender,
	}
}

// SendSyncImagesCommand sends sync images command for product.
func (c ImagesCommander) SendSyncImagesCommand(ctx context.Context, productID int64, imageURLs []string) error {
	return send(ctx, c.sender, SyncImagesCommand{
		ProductID: productID,
		ImageURLs: imageURLs,
	})
}

func send(ctx context.Context, sender Sender, cmd any) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal command: %w", err)
	}

	return sender.Send(ctx, cmdMsg)
}
