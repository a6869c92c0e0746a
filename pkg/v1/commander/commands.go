package commander

// ProcessFeedCommand is command to ingest feed of feed source.
type ProcessFeedCommand struct {
	FeedSourceID int64 `json:"feedSourceId"`
	// Attempt is number of previous failed attempts.
	Attempt int `json:"attempt,omitempty"`
}

// SyncImagesCommand is command to synchronize product images with image URLs.
type SyncImagesCommand struct {
	ProductID int64    `json:"productId"`
	ImageURLs []string `json:"imageUrls"`
}
